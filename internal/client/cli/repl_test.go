package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Open(ctx context.Context, view string) error {
	f.calls = append(f.calls, "open")
	f.args = append(f.args, view)
	return nil
}
func (f *fakeExec) Vitals(ctx context.Context) error {
	f.calls = append(f.calls, "vitals")
	return nil
}
func (f *fakeExec) Meds(ctx context.Context) error { f.calls = append(f.calls, "meds"); return nil }
func (f *fakeExec) Take(ctx context.Context, id string) error {
	f.calls = append(f.calls, "take")
	f.args = append(f.args, id)
	return nil
}
func (f *fakeExec) Emergency(ctx context.Context) error {
	f.calls = append(f.calls, "emergency")
	return nil
}

func TestRunREPL_Dispatch(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"whoami",
		"open profile",
		"",
		"vitals",
		"meds",
		"take 2",
		"emergency",
		"foobar",
		"logout",
		"exit",
		"login",
	}, "\n")

	var out bytes.Buffer
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return " (s)" }, rdr(input), &out)

	assert.Equal(t, []string{"login", "whoami", "open", "vitals", "meds", "take", "emergency", "logout"}, exec.calls)
	assert.Equal(t, []string{"profile", "2"}, exec.args)
	assert.Contains(t, out.String(), "Available commands: login, open <view>, exit\n")
	assert.Contains(t, out.String(), "Available commands: whoami, open <view>, vitals, meds, take <id>, emergency, logout, exit\n")
	assert.Contains(t, out.String(), "Unknown command: foobar\n")
	assert.Contains(t, out.String(), "hg (s)> ")
	assert.True(t, strings.HasSuffix(out.String(), "Bye!\n"))
}

func TestRunREPL_UsageAndEOF(t *testing.T) {
	var out bytes.Buffer
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("open\ntake"), &out)

	assert.Empty(t, exec.calls)
	assert.Contains(t, out.String(), "Usage: open <view>\n")
	assert.Contains(t, out.String(), "Usage: take <id>\n")
}
