package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/roach88/flooring/internal/testutil"
)

// Orders dated futureDate are accepted; today is July 5, 2020.
const (
	futureDate = "07062020"
	todayDate  = "07052020"
	pastDate   = "07042020"
	shardPath  = testutil.OrdersDir + "/Orders_07062020.txt"
)

// runCLI executes the root command against fsys with a clock stopped on
// July 5, 2020. It returns stdout.
func runCLI(t *testing.T, fsys afero.Fs, args ...string) (string, error) {
	t.Helper()
	opts := &RootOptions{
		Fs:         fsys,
		Clock:      testutil.ClockOn(2020, time.July, 5),
		SessionIDs: testutil.NewFixedSessionGenerator(""),
	}
	cmd := newRootCommand(opts)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--data-dir", testutil.DataDir}, args...))

	err := cmd.Execute()
	return out.String(), err
}

// addWood places 100 sq ft of Wood shipped to Ohio on futureDate.
func addWood(t *testing.T, fsys afero.Fs, name string) string {
	t.Helper()
	out, err := runCLI(t, fsys, "add", futureDate, "--name", name, "--state", "Ohio", "--product", "Wood", "--area", "100")
	if err != nil {
		t.Fatalf("add failed: %v\n%s", err, out)
	}
	return out
}
