// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messages = "ID:hello\nen:hi\nde:hallo\n---\nID:x\n---\n"

func run(t *testing.T, args ...string) (stdout string, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = newApp(&out, &errOut).Run(append([]string{"msgc"}, args...))
	return out.String(), errOut.String(), err
}

func workdir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
	}
	t.Chdir(dir)
	return dir
}

func TestDefaultActionReadsMessageTxt(t *testing.T) {

	workdir(t, map[string]string{"message.txt": messages})

	stdout, _, err := run(t)
	require.NoError(t, err)

	want := `#include <string.h>

const char *noct_get_system_language(void);

const char *noct_gettext(const char *msg)
{
    const char *lang_code = noct_get_system_language();
    if (strcmp(msg, "hello") == 0) {
        if (strcmp(lang_code, "en") == 0) return "hi";
        if (strcmp(lang_code, "de") == 0) return "hallo";
        return "hello";
    }
    if (strcmp(msg, "x") == 0) {
        return "x";
    }
    return msg;
}
`
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	generated, _, err := run(t, "generate")
	require.NoError(t, err)
	assert.Equal(t, stdout, generated)
}

func TestGlobalFlags(t *testing.T) {

	dir := workdir(t, map[string]string{"tr.txt": messages})

	_, _, err := run(t, "--input", "tr.txt", "--prefix", "pf", "--output", "gen/translation.c", "c")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "gen", "translation.c"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "const char *pf_gettext(const char *msg)")
}

func TestConfigFileAndEnv(t *testing.T) {

	workdir(t, map[string]string{
		"tr.txt":    messages,
		"msgc.yaml": "input: tr.txt\nprefix: fromfile\n",
	})

	stdout, _, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "fromfile_gettext")

	t.Setenv("MSGC_PREFIX", "fromenv")
	stdout, _, err = run(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "fromenv_gettext")

	stdout, _, err = run(t, "--prefix", "fromflag")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fromflag_gettext")
}

func TestGoCommand(t *testing.T) {

	workdir(t, map[string]string{"message.txt": messages})

	stdout, _, err := run(t, "go", "--package", "msgs", "--func", "T")
	require.NoError(t, err)
	assert.Contains(t, stdout, "package msgs")
	assert.Contains(t, stdout, "func T(msg string) string")
}

func TestReportCommand(t *testing.T) {

	workdir(t, map[string]string{"message.txt": messages})

	stdout, _, err := run(t, "report", "--langs", "de")
	require.NoError(t, err)
	assert.Contains(t, stdout, "## Missing in `de`")
	assert.NotContains(t, stdout, "## Missing in `en`")
}

func TestCheckCommand(t *testing.T) {

	workdir(t, map[string]string{"message.txt": messages, "bad.txt": "ID:a\nen:x\n"})

	_, stderr, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, stderr, "message.txt")

	_, stderr, err = run(t, "--input", "bad.txt", "check")
	require.Error(t, err)
	assert.Contains(t, stderr, "bad.txt:1: error:")
	assert.Contains(t, stderr, "1 error(s), 0 warning(s)")
}

func TestStrictFlag(t *testing.T) {

	workdir(t, map[string]string{"message.txt": "ID:a\nen:x\n"})

	stdout, _, err := run(t, "--strict")
	require.Error(t, err)
	assert.Empty(t, stdout)
}

func TestLookupCommand(t *testing.T) {

	workdir(t, map[string]string{"message.txt": messages})

	stdout, _, err := run(t, "lookup", "--lang", "de", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hallo\n", stdout)

	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")
	stdout, _, err = run(t, "lookup", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", stdout)

	stdout, _, err = run(t, "lookup", "--lang", "ja", "unknown message")
	require.NoError(t, err)
	assert.Equal(t, "unknown message\n", stdout)

	_, _, err = run(t, "lookup")
	require.Error(t, err)
}
