package launch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashdot/hashdot/internal/props"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func testOpts(t *testing.T, profiles map[string]string) Options {
	t.Helper()
	dir := t.TempDir()
	if _, ok := profiles["default"]; !ok {
		profiles["default"] = ""
	}
	for name, content := range profiles {
		writeFile(t, filepath.Join(dir, name+".hdp"), content)
	}
	return Options{ProfileDir: dir}
}

func TestVMOptionsOrdering(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "one.jar")
	touch(t, dir, "two.jar")

	store := props.NewStore()
	store.Set(props.PropVMOptions, []string{"-Xmx512m", "-Xmx1g", "-ea"})
	store.Set(props.PropClassPath, []string{filepath.Join(dir, "*.jar")})
	store.Set(props.PropMain, []string{"com.example.Main"})

	opts, err := VMOptions(store)
	require.NoError(t, err)

	// Compacted raw options first.
	assert.Equal(t, "-Xmx1g", opts[0])
	assert.Equal(t, "-ea", opts[1])

	// java.class.path first among the -D entries, colon-joined.
	expectCP := "-Djava.class.path=" +
		filepath.Join(dir, "one.jar") + ":" + filepath.Join(dir, "two.jar")
	assert.Equal(t, expectCP, opts[2])

	// Every other property follows as -Dname=value.
	assert.Contains(t, opts, "-Dhashdot.main=com.example.Main")
	for _, o := range opts[3:] {
		assert.False(t, strings.HasPrefix(o, "-Djava.class.path="))
	}
}

func TestVMOptionsMultiValueJoinsWithSpace(t *testing.T) {
	store := props.NewStore()
	store.Set("greeting", []string{"hello", "world"})

	opts, err := VMOptions(store)
	require.NoError(t, err)
	assert.Equal(t, []string{"-Dgreeting=hello world"}, opts)
}

func TestVMOptionsCompactsStoreEntry(t *testing.T) {
	store := props.NewStore()
	store.Set(props.PropVMOptions, []string{"-Xms64m", "-Xms128m"})

	_, err := VMOptions(store)
	require.NoError(t, err)

	vals, _ := store.Get(props.PropVMOptions)
	assert.Equal(t, []string{"-Xms128m"}, vals)
}

func TestVMOptionsGlobMissFails(t *testing.T) {
	store := props.NewStore()
	store.Set(props.PropClassPath, []string{filepath.Join(t.TempDir(), "*.jar")})

	_, err := VMOptions(store)
	assert.Error(t, err)
}

func TestResolveCanonical(t *testing.T) {
	opts := testOpts(t, map[string]string{
		"default": "hashdot.main = com.example.Main\n",
	})
	script := filepath.Join(t.TempDir(), "tool.rb")
	writeFile(t, script, "#. x = 1\nbody\n")

	res, err := Resolve([]string{"hashdot", script, "a", "b"}, opts)
	require.NoError(t, err)

	assert.Equal(t, script, res.ScriptPath)
	assert.Equal(t, []string{"a", "b"}, res.ScriptArgs)
	assert.Equal(t, "tool.rb", res.ProcessName)

	v, _ := res.Store.Scalar(props.PropScript)
	assert.Equal(t, script, v)
	v, _ = res.Store.Scalar("x")
	assert.Equal(t, "1", v)
	assert.True(t, res.Store.Has(props.PropVersion))
}

func TestResolveCanonicalRequiresScript(t *testing.T) {
	opts := testOpts(t, map[string]string{})
	_, err := Resolve([]string{"hashdot"}, opts)
	assert.Error(t, err)
}

func TestResolveAliasMode(t *testing.T) {
	opts := testOpts(t, map[string]string{
		"jruby": "hashdot.main = org.jruby.Main\n" +
			"hashdot.parse_flags.value_args = -e -I\n",
	})
	scriptDir := t.TempDir()
	script := filepath.Join(scriptDir, "tool.rb")
	writeFile(t, script, "#. x = from-header\n")

	argv := []string{"/usr/local/bin/jruby", "-I", "lib", script, "arg1"}
	res, err := Resolve(argv, opts)
	require.NoError(t, err)

	assert.Equal(t, script, res.ScriptPath)
	// Everything after the script path goes to the hosted main.
	assert.Equal(t, []string{"arg1"}, res.ScriptArgs)
	assert.Equal(t, "tool.rb", res.ProcessName)

	v, _ := res.Store.Scalar("x")
	assert.Equal(t, "from-header", v)
	v, _ = res.Store.Scalar(props.PropMain)
	assert.Equal(t, "org.jruby.Main", v)
}

func TestResolveAliasTerminalFlag(t *testing.T) {
	opts := testOpts(t, map[string]string{
		"jruby": "hashdot.parse_flags.terminal = --version\n",
	})

	argv := []string{"jruby", "--version", "whatever"}
	res, err := Resolve(argv, opts)
	require.NoError(t, err)

	// No script: all of argv after the program name passes through.
	assert.Equal(t, "", res.ScriptPath)
	assert.Equal(t, []string{"--version", "whatever"}, res.ScriptArgs)
	assert.Equal(t, "jruby", res.ProcessName)
	assert.False(t, res.Store.Has(props.PropScript))
}

func TestResolveAliasMissingProfileIsFatal(t *testing.T) {
	opts := testOpts(t, map[string]string{})
	_, err := Resolve([]string{"noprofile", "script"}, opts)
	assert.Error(t, err)
}

func TestResolveEnvProfile(t *testing.T) {
	opts := testOpts(t, map[string]string{
		"site": "x = from-site\n",
	})
	opts.EnvProfile = "site"
	script := filepath.Join(t.TempDir(), "s.rb")
	writeFile(t, script, "")

	res, err := Resolve([]string{"hashdot", script}, opts)
	require.NoError(t, err)
	v, _ := res.Store.Scalar("x")
	assert.Equal(t, "from-site", v)
}

func TestInjectEnv(t *testing.T) {
	t.Setenv("FOO", "")
	os.Unsetenv("FOO")

	store := props.NewStore()
	store.Set("hashdot.env.FOO", []string{"hello", "world"})
	store.Set("hashdot.env", []string{"ignored, no suffix"})

	require.NoError(t, InjectEnv(store))
	assert.Equal(t, "hello world", os.Getenv("FOO"))
}

func TestInternalClassName(t *testing.T) {
	assert.Equal(t, "com/example/Main", internalClassName("com.example.Main"))
	assert.Equal(t, "Main", internalClassName("Main"))
}
