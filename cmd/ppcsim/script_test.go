package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStep(t *testing.T) {
	tests := []struct {
		raw     string
		want    step
		wantErr bool
	}{
		{raw: "levelup", want: step{action: actionLevelUp, levels: 1}},
		{raw: "LevelUp:12", want: step{action: actionLevelUp, levels: 12}},
		{raw: "save:quick", want: step{action: actionSave, slot: "quick"}},
		{raw: " load:quick ", want: step{action: actionLoad, slot: "quick"}},
		{raw: "spend", want: step{action: actionSpend}},
		{raw: "state", want: step{action: actionState}},
		{raw: "levelup:0", wantErr: true},
		{raw: "levelup:127", want: step{action: actionLevelUp, levels: 127}},
		{raw: "levelup:128", wantErr: true},
		{raw: "levelup:70000", wantErr: true},
		{raw: "save", wantErr: true},
		{raw: "load:", wantErr: true},
		{raw: "spend:2", wantErr: true},
		{raw: "fly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseStep(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScript_StopsAtFirstBadStep(t *testing.T) {
	_, err := parseScript([]string{"levelup:2", "bogus", "state"})
	assert.ErrorContains(t, err, "bogus")

	steps, err := parseScript([]string{"levelup:2", "save:a"})
	require.NoError(t, err)
	assert.Equal(t, "levelup:2", steps[0].String())
	assert.Equal(t, "save:a", steps[1].String())
}

type stubCommand struct {
	name string
	got  []string
	err  error
}

func (c *stubCommand) Name() string        { return c.name }
func (c *stubCommand) Description() string { return "stub " + c.name }
func (c *stubCommand) Run(args []string) error {
	c.got = args
	return c.err
}

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry(&SlotsCommand{}, &RunCommand{}, &ServeCommand{})

	names := []string{}
	for _, c := range r.List() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"run", "serve", "slots"}, names)

	_, ok := r.Get("rates")
	assert.False(t, ok)
}

func TestRegistry_Dispatch(t *testing.T) {
	ok := &stubCommand{name: "ok"}
	bad := &stubCommand{name: "bad", err: errors.New("boom")}
	r := NewRegistry(ok, bad)

	require.NoError(t, r.Dispatch([]string{"ok", "levelup:2", "state"}))
	assert.Equal(t, []string{"levelup:2", "state"}, ok.got)

	assert.ErrorIs(t, r.Dispatch(nil), errNoCommand)
	assert.ErrorIs(t, r.Dispatch([]string{"fly"}), errUnknownCommand)
	assert.EqualError(t, r.Dispatch([]string{"bad"}), "bad: boom")
}

func TestRegistry_WriteHelp(t *testing.T) {
	var buf bytes.Buffer
	NewRegistry(&stubCommand{name: "run"}, &stubCommand{name: "serve"}).WriteHelp(&buf)

	out := buf.String()
	assert.Contains(t, out, "Usage: ppcsim")
	assert.Contains(t, out, "stub run")
	assert.Less(t, strings.Index(out, "run"), strings.Index(out, "serve"))
}
