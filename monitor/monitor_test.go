// SPDX-License-Identifier: GPL-3.0-or-later
package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/checker"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/domain"
	"github.com/KarlapudiPrashanthi/phishingemailclassifier/domain/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type fakePipeline struct {
	calls    [][]*domain.ParsedMessage
	err      error
	panicked bool
}

func (f *fakePipeline) CheckMessages(_ context.Context, messages []*domain.ParsedMessage) (*checker.Summary, error) {
	if f.panicked {
		panic("pipeline blew up")
	}
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return &checker.Summary{}, f.err
	}
	return &checker.Summary{Checked: len(messages), Results: []*checker.MessageResult{}}, nil
}

func TestRunCycleDeduplicatesSubjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockMailFetcher(ctrl)
	mail := domain.NewParsedMessage("S1", "body", "from@x.com")

	// The same mail is fetched in both cycles but only checked once.
	fetcher.EXPECT().
		FetchRecent(gomock.Eq(10), gomock.Eq("INBOX")).
		Return([]*domain.ParsedMessage{mail}).
		Times(2)

	pipeline := &fakePipeline{}
	m := New(fetcher, pipeline, []string{"INBOX"}, 10, time.Minute)

	m.RunCycle(context.Background())
	m.RunCycle(context.Background())

	assert.Len(t, pipeline.calls, 1)
	assert.Equal(t, []*domain.ParsedMessage{mail}, pipeline.calls[0])
}

func TestRunCycleRetriesAfterPipelineError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockMailFetcher(ctrl)
	mail := domain.NewParsedMessage("S1", "body", "from@x.com")
	fetcher.EXPECT().
		FetchRecent(gomock.Any(), gomock.Any()).
		Return([]*domain.ParsedMessage{mail}).
		Times(2)

	pipeline := &fakePipeline{err: errors.New("model not ready")}
	m := New(fetcher, pipeline, []string{"INBOX"}, 10, time.Minute)

	m.RunCycle(context.Background())

	// A failed check must not mark the subject seen: the next cycle
	// processes it again.
	pipeline.err = nil
	m.RunCycle(context.Background())

	assert.Len(t, pipeline.calls, 2)
}

func TestRunCycleNoNewMails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockMailFetcher(ctrl)
	fetcher.EXPECT().FetchRecent(gomock.Any(), gomock.Any()).Return([]*domain.ParsedMessage{})

	pipeline := &fakePipeline{}
	m := New(fetcher, pipeline, []string{"INBOX"}, 10, time.Minute)

	m.RunCycle(context.Background())

	assert.Empty(t, pipeline.calls)
}

func TestRunCycleRecoversFromPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockMailFetcher(ctrl)
	mail := domain.NewParsedMessage("S1", "body", "from@x.com")
	fetcher.EXPECT().FetchRecent(gomock.Any(), gomock.Any()).Return([]*domain.ParsedMessage{mail})

	pipeline := &fakePipeline{panicked: true}
	m := New(fetcher, pipeline, []string{"INBOX"}, 10, time.Minute)

	assert.NotPanics(t, func() {
		m.RunCycle(context.Background())
	})
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockMailFetcher(ctrl)
	fetcher.EXPECT().FetchRecent(gomock.Any(), gomock.Any()).Return([]*domain.ParsedMessage{}).MinTimes(1)

	pipeline := &fakePipeline{}
	m := New(fetcher, pipeline, []string{"INBOX"}, 10, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		assert.Fail(t, "monitor did not stop after context cancellation")
	}
}
