// SPDX-License-Identifier: GPL-3.0-or-later
package cache

import (
	"os"
	"testing"

	"github.com/KarlapudiPrashanthi/phishingemailclassifier/log"
)

func TestMain(m *testing.M) {
	log.InitLogging("error")
	os.Exit(m.Run())
}
