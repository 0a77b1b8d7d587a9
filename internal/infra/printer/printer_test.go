package printer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/toilet-monitor/internal/domain"
	"github.com/runoshun/toilet-monitor/internal/infra/executor"
)

type recordingRunner struct {
	err   error
	cmds  []*executor.Command
	stdin []string
}

func (r *recordingRunner) Run(_ context.Context, cmd *executor.Command) error {
	r.cmds = append(r.cmds, cmd)
	data, _ := io.ReadAll(cmd.Stdin)
	r.stdin = append(r.stdin, string(data))
	return r.err
}

var job = domain.PrintJob{
	Title:    "LAPORAN",
	Text:     "LAPORAN\nNo. 1  Menyikat lantai\n",
	Markdown: "# LAPORAN\n\n| No | Checklist |\n|---:|---|\n| 1 | Menyikat lantai |\n",
}

func TestPrinter_Command(t *testing.T) {
	runner := &recordingRunner{}
	var out bytes.Buffer
	p := New(domain.PrintConfig{Command: " lp -d office "}, runner, &out, &out)

	require.NoError(t, p.Print(context.Background(), job))

	require.Len(t, runner.cmds, 1)
	assert.Equal(t, []string{"-c", "lp -d office"}, runner.cmds[0].Args)
	assert.Equal(t, job.Text, runner.stdin[0])
}

func TestPrinter_CommandError(t *testing.T) {
	boom := errors.New("exit status 1")
	p := New(domain.PrintConfig{Command: "lp"}, &recordingRunner{err: boom}, io.Discard, io.Discard)

	err := p.Print(context.Background(), job)

	assert.ErrorIs(t, err, boom)
}

func TestPrinter_RendersMarkdown(t *testing.T) {
	var out bytes.Buffer
	p := New(domain.PrintConfig{Style: "notty", Width: 60}, &recordingRunner{}, &out, io.Discard)

	require.NoError(t, p.Print(context.Background(), job))

	assert.Contains(t, out.String(), "LAPORAN")
	assert.Contains(t, out.String(), "Menyikat lantai")
}

func TestNew_Defaults(t *testing.T) {
	p := New(domain.PrintConfig{}, nil, io.Discard, io.Discard)

	assert.Equal(t, StyleAuto, p.style)
	assert.Equal(t, domain.DefaultPrintWidth, p.width)
}

func TestResolveStyle(t *testing.T) {
	assert.Equal(t, "notty", ResolveStyle("notty"))
	assert.Contains(t, []string{"dark", "light"}, ResolveStyle(StyleAuto))
	assert.Contains(t, []string{"dark", "light"}, ResolveStyle(""))
}
