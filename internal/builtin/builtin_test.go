package builtin_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyonder/shellgo/internal/builtin"
)

func newEnv() (*builtin.Env, *strings.Builder, *strings.Builder) {
	var out, errOut strings.Builder
	return &builtin.Env{Stdin: strings.NewReader(""), Stdout: &out, Stderr: &errOut}, &out, &errOut
}

func TestIsBuiltin(t *testing.T) {
	assert.True(t, builtin.IsBuiltin("cd"))
	assert.True(t, builtin.IsBuiltin("exit"))
	assert.False(t, builtin.IsBuiltin("ls"))
}

func TestEcho_JoinsArgsWithSpaces(t *testing.T) {
	env, out, _ := newEnv()
	result := builtin.Echo(context.Background(), env, []string{"a", "b", "c"})
	assert.Equal(t, 0, result.Status)
	assert.Equal(t, "a b c\n", out.String())
}

func TestExit_NoArgsExitsZero(t *testing.T) {
	env, _, _ := newEnv()
	result := builtin.Exit(context.Background(), env, nil)
	assert.True(t, result.Exit)
	assert.Equal(t, 0, result.Status)
}

func TestExit_NumericArg(t *testing.T) {
	env, _, _ := newEnv()
	result := builtin.Exit(context.Background(), env, []string{"42"})
	assert.True(t, result.Exit)
	assert.Equal(t, 42, result.Status)
}

func TestExit_NonNumericArgExitsZeroSilently(t *testing.T) {
	env, _, errOut := newEnv()
	result := builtin.Exit(context.Background(), env, []string{"not-a-number"})
	assert.True(t, result.Exit)
	assert.Equal(t, 0, result.Status)
	assert.Empty(t, errOut.String())
}

func TestType_Builtin(t *testing.T) {
	env, out, _ := newEnv()
	result := builtin.Type(context.Background(), env, []string{"cd"})
	assert.Equal(t, 0, result.Status)
	assert.Equal(t, "cd is a shell builtin\n", out.String())
}

func TestType_External(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "myprog")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755))
	t.Setenv("PATH", dir)

	env, out, _ := newEnv()
	result := builtin.Type(context.Background(), env, []string{"myprog"})
	assert.Equal(t, 0, result.Status)
	assert.Equal(t, "myprog is "+exe+"\n", out.String())
}

func TestType_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	env, _, errOut := newEnv()
	result := builtin.Type(context.Background(), env, []string{"nope"})
	assert.Equal(t, 1, result.Status)
	assert.Equal(t, "nope: not found\n", errOut.String())
}

func TestPwd_PrintsCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(oldwd)
	require.NoError(t, os.Chdir(dir))

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	env, out, _ := newEnv()
	result := builtin.Pwd(context.Background(), env, nil)
	assert.Equal(t, 0, result.Status)
	assert.Equal(t, resolved+"\n", out.String())
}

func TestCd_ChangesDirectory(t *testing.T) {
	dir := t.TempDir()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(oldwd)

	env, _, _ := newEnv()
	result := builtin.Cd(context.Background(), env, []string{dir})
	assert.Equal(t, 0, result.Status)

	wd, err := os.Getwd()
	require.NoError(t, err)
	resolvedDir, _ := filepath.EvalSymlinks(dir)
	resolvedWd, _ := filepath.EvalSymlinks(wd)
	assert.Equal(t, resolvedDir, resolvedWd)
}

func TestCd_NoArgsGoesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(oldwd)

	env, _, _ := newEnv()
	result := builtin.Cd(context.Background(), env, nil)
	assert.Equal(t, 0, result.Status)

	wd, err := os.Getwd()
	require.NoError(t, err)
	resolvedHome, _ := filepath.EvalSymlinks(home)
	resolvedWd, _ := filepath.EvalSymlinks(wd)
	assert.Equal(t, resolvedHome, resolvedWd)
}

func TestCd_NonexistentDirectory(t *testing.T) {
	env, _, errOut := newEnv()
	result := builtin.Cd(context.Background(), env, []string{"/no/such/directory"})
	assert.Equal(t, 1, result.Status)
	assert.Contains(t, errOut.String(), "No such file or directory")
}
