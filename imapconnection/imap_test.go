// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"testing"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/domain"

	"github.com/stretchr/testify/assert"
)

func TestKeepNewest(t *testing.T) {
	tests := []struct {
		name     string
		uids     []uint32
		max      int
		expected []uint32
	}{
		{"fewer than max", []uint32{1, 2}, 5, []uint32{1, 2}},
		{"exactly max", []uint32{1, 2, 3}, 3, []uint32{1, 2, 3}},
		{"keeps trailing entries", []uint32{1, 2, 3, 4, 5}, 2, []uint32{4, 5}},
		{"empty", []uint32{}, 3, []uint32{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, keepNewest(tc.uids, tc.max))
		})
	}
}

func TestReverseMails(t *testing.T) {
	oldest := domain.NewParsedMessage("oldest", "b", "")
	middle := domain.NewParsedMessage("middle", "b", "")
	newest := domain.NewParsedMessage("newest", "b", "")

	mails := []*domain.ParsedMessage{oldest, middle, newest}
	reverseMails(mails)

	assert.Equal(t, []*domain.ParsedMessage{newest, middle, oldest}, mails)
}

func TestReverseMailsEmpty(t *testing.T) {
	assert.NotPanics(t, func() {
		reverseMails(nil)
		reverseMails([]*domain.ParsedMessage{})
	})
}
