package prompt

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tscdk/project"
)

func stubForms(t *testing.T, fn func(*huh.Form) error) *int {
	t.Helper()
	calls := 0
	prev := runForm
	runForm = func(f *huh.Form) error {
		calls++
		return fn(f)
	}
	t.Cleanup(func() { runForm = prev })
	return &calls
}

func TestFieldHas(t *testing.T) {
	f := FieldName | FieldLinter
	assert.True(t, f.Has(FieldName))
	assert.True(t, f.Has(FieldLinter))
	assert.False(t, f.Has(FieldTestTool))
	assert.False(t, f.Has(FieldName|FieldTestTool))
	assert.True(t, FieldAll.Has(FieldFormatter|FieldPackageManager))
}

func TestAskOneFormPerField(t *testing.T) {
	calls := stubForms(t, func(*huh.Form) error { return nil })

	in := project.Configuration{ProjectName: "  my app ", Linter: project.LinterBiome}
	got, err := Ask(in, FieldName|FieldLinter|FieldTestTool)
	require.NoError(t, err)

	assert.Equal(t, 3, *calls)
	assert.Equal(t, "my app", got.ProjectName)
	assert.Equal(t, project.LinterBiome, got.Linter, "preset value is the initial selection")
	assert.Equal(t, project.TestJest, got.TestTool, "unset select starts on the first option")
	assert.Empty(t, got.Formatter, "unasked field is left alone")
}

func TestAskNothing(t *testing.T) {
	calls := stubForms(t, func(*huh.Form) error { return nil })

	_, err := Ask(project.Configuration{}, 0)
	require.NoError(t, err)
	assert.Zero(t, *calls)
}

func TestAskCancelled(t *testing.T) {
	stubForms(t, func(*huh.Form) error { return huh.ErrUserAborted })

	_, err := Ask(project.Configuration{}, FieldAll)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestAskFormError(t *testing.T) {
	boom := errors.New("no tty")
	calls := stubForms(t, func(*huh.Form) error { return boom })

	_, err := Ask(project.Configuration{}, FieldAll)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrCancelled)
	assert.Equal(t, 1, *calls, "stops at the first failing question")
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, validateName("My Cool App"))
	assert.ErrorIs(t, validateName(""), errNameRequired)
	assert.ErrorIs(t, validateName(" \t "), errNameRequired)
}

func TestOptionsKeepOrder(t *testing.T) {
	opts := options(project.FormatterOptions())
	require.Len(t, opts, 3)
	for i, f := range project.FormatterOptions() {
		assert.Equal(t, f, opts[i].Value)
		assert.Equal(t, f.String(), opts[i].Key)
	}
}
