package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allexsabbir/uiu-ums-go/internal/auth"
	"github.com/allexsabbir/uiu-ums-go/internal/logger"
	"github.com/allexsabbir/uiu-ums-go/internal/registry"
	"github.com/allexsabbir/uiu-ums-go/internal/report"
	"github.com/allexsabbir/uiu-ums-go/internal/seed"
)

// promptConsole builds a console over scripted input with no backends;
// the prompt helpers never touch them.
func promptConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	log := logger.NewWithWriter("error", &bytes.Buffer{})
	return New(strings.NewReader(input), out, nil, nil, nil, log), out
}

func TestReadLineTrims(t *testing.T) {
	c, _ := promptConsole("  hello  \n")
	v, ok := c.readLine("? ")
	require.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestReadLineExhausted(t *testing.T) {
	c, _ := promptConsole("")
	_, ok := c.readLine("? ")
	assert.False(t, ok)
}

func TestPromptRequiredRepromptsOnBlank(t *testing.T) {
	c, out := promptConsole("\n\nvalue\n")
	v, ok := c.promptRequired("Name: ")
	require.True(t, ok)
	assert.Equal(t, "value", v)
	assert.Contains(t, out.String(), "This field is required.")
}

func TestPromptIntRepromptsOnGarbage(t *testing.T) {
	c, out := promptConsole("abc\n42\n")
	n, ok := c.promptInt("Batch: ")
	require.True(t, ok)
	assert.Equal(t, 42, n)
	assert.Contains(t, out.String(), "Enter a whole number.")
}

func TestPromptOptionalInt(t *testing.T) {
	c, _ := promptConsole("\n")
	n, ok := c.promptOptionalInt("Batch: ")
	require.True(t, ok)
	assert.Nil(t, n)

	c, _ = promptConsole("7\n")
	n, ok = c.promptOptionalInt("Batch: ")
	require.True(t, ok)
	require.NotNil(t, n)
	assert.Equal(t, 7, *n)
}

func TestPromptFloatRepromptsOnGarbage(t *testing.T) {
	c, _ := promptConsole("x\n1.5\n")
	f, ok := c.promptFloat("Credit: ")
	require.True(t, ok)
	assert.Equal(t, 1.5, f)
}

// seededConsole opens a fresh registry in a temp dir, seeds the demo
// data and wires a console over the scripted input.
func seededConsole(t *testing.T, input string) (*Console, *bytes.Buffer) {
	t.Helper()

	reg, err := registry.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reg.Close() })

	authn := auth.NewAuthenticator(reg.Users)
	log := logger.NewWithWriter("error", &bytes.Buffer{})
	seeded, err := seed.Bootstrap(reg, authn, log.Logger)
	require.NoError(t, err)
	require.True(t, seeded)

	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out, reg, report.NewEngine(reg), authn, log), out
}

func TestRunAdminSession(t *testing.T) {
	input := strings.Join([]string{
		"admin", "admin123", // login
		"3",                 // list students
		"11", "02124100034", // transcript
		"0", // logout
		"",  // blank username quits
	}, "\n") + "\n"

	c, out := seededConsole(t, input)
	require.NoError(t, c.Run())

	output := out.String()
	assert.Contains(t, output, "Sabbir Ahmed")
	assert.Contains(t, output, "Afsana Mim")
	assert.Contains(t, output, "EEE-2101")
	assert.Contains(t, output, "CGPA:")
	assert.Contains(t, output, "Logged out.")
}

func TestRunRejectsBadCredentials(t *testing.T) {
	input := "admin\nnope\n\n"
	c, out := seededConsole(t, input)
	require.NoError(t, c.Run())
	assert.Contains(t, out.String(), "Invalid credentials.")
	assert.NotContains(t, out.String(), "ADMIN MENU")
}

func TestFacultyCannotGradeOthersCourse(t *testing.T) {
	// rezwan teaches EEE-2101; CSE-1101 belongs to john.
	input := strings.Join([]string{
		"rezwan", "teacher123",
		"3", "CSE-1101", "Fall-2025",
		"0",
		"",
	}, "\n") + "\n"

	c, out := seededConsole(t, input)
	require.NoError(t, c.Run())
	assert.Contains(t, out.String(), "You are not the instructor of this course.")
	assert.NotContains(t, out.String(), "Grade updated.")
}

func TestStudentSeesOwnProfileAndTranscript(t *testing.T) {
	input := strings.Join([]string{
		"sabbir", "student123",
		"1", // profile
		"2", // transcript
		"0",
		"",
	}, "\n") + "\n"

	c, out := seededConsole(t, input)
	require.NoError(t, c.Run())

	output := out.String()
	assert.Contains(t, output, "Sabbir Ahmed")
	assert.Contains(t, output, "CSE-1101")
	assert.Contains(t, output, "CGPA:")
}
