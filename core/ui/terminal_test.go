package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterVerbosity(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	w.Info("shown")
	w.Debug("hidden")
	assert.Contains(t, buf.String(), "ℹ shown")
	assert.NotContains(t, buf.String(), "hidden")

	buf.Reset()
	w.SetVerbosity(2)
	w.Debug("now %d", 2)
	assert.Equal(t, "  now 2\n", buf.String())

	buf.Reset()
	w.SetVerbosity(0)
	w.Info("quiet")
	assert.Empty(t, buf.String())
	assert.Equal(t, 0, w.Verbosity())
}

func TestWriterStatusLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	w.Success("ok")
	w.Warning("careful")
	w.Error("broken %s", "pipe")
	w.Println("100%% done")

	assert.Equal(t, "✓ ok\n⚠ careful\n✗ broken pipe\n100% done\n", buf.String())
	assert.Equal(t, "plain", w.Bold("plain"))
}

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("Category", "AWS").AlignRight(1, 7)
	table.AddRow("Compute", "$0.18")
	table.AddRow("Database", "$65.00", "ignored")
	table.AddRow("Σ")
	table.Render()
	assert.Equal(t, 3, table.Rows())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Category │    AWS", lines[0])
	assert.Equal(t, strings.Repeat("─", 9)+"┼"+strings.Repeat("─", 7), lines[1])
	assert.Equal(t, "Compute  │  $0.18", lines[2])
	assert.Equal(t, "Database │ $65.00", lines[3])
	assert.Equal(t, "Σ"+strings.Repeat(" ", 8)+"│", lines[4])
}

func TestCostSummary(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf, true).NewCostSummary("Low Usage")
	s.Labels = [2]string{"AWS", "Azure"}
	s.Totals = [2]string{"$10.00", "$8.00"}
	s.LoggingPct = [2]string{"20.0%", "25.0%"}
	s.Savings = "$2.00"
	s.Percent = "20.0%"
	s.Favorable = true
	s.Render()

	assert.Equal(t, strings.Join([]string{
		"📊 Low Usage",
		"   AWS Total Cost: $10.00/month",
		"   Azure Total Cost: $8.00/month",
		"   Azure Savings: $2.00/month (20.0%)",
		"   AWS Logging %: 20.0%",
		"   Azure Logging %: 25.0%",
		"",
	}, "\n"), buf.String())
}
