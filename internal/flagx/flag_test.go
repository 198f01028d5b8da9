package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{"separate value", []string{"-c", "conf.json", "-a", "localhost"}, []string{"-c"}, []string{"-c", "conf.json"}},
		{"equals form", []string{"-config=alt.json", "-a", "localhost"}, []string{"-config"}, []string{"-config=alt.json"}},
		{"server flags only", []string{"-c", "s.json", "-a", ":50051", "-x", "5", "-s", "seed.json"}, []string{"-a", "-x", "-s"},
			[]string{"-a", ":50051", "-x", "5", "-s", "seed.json"}},
		{"cli flags only", []string{"-i", "3", "-o", "out", "-d", "dsn"}, []string{"-i", "-o"}, []string{"-i", "3", "-o", "out"}},
		{"unknown flags and positionals dropped", []string{"-x", "1", "positional"}, []string{"-c"}, []string{}},
		{"trailing flag without value", []string{"-c"}, []string{"-c"}, []string{"-c"}},
		{"dash token is not a value", []string{"-c", "-config=alt.json"}, []string{"-c", "-config"}, []string{"-c", "-config=alt.json"}},
		{"equals value may start with dash", []string{"-config=--weird.json"}, []string{"-config"}, []string{"-config=--weird.json"}},
		{"repeated flag keeps order", []string{"-c", "one.json", "-c", "two.json"}, []string{"-c"}, []string{"-c", "one.json", "-c", "two.json"}},
		{"empty", []string{}, []string{"-c"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.json"}
		assert.Equal(t, "/path/short.json", ConfigFile())
	})

	t.Run("long -config with equals", func(t *testing.T) {
		os.Args = []string{"testbin", "-a", ":9000", "-config=/path/long.json"}
		assert.Equal(t, "/path/long.json", ConfigFile())
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "")
		os.Args = []string{"testbin", "-x", "1", "-y", "2"}
		assert.Empty(t, ConfigFile())
	})

	t.Run("multiple flags, last wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", ConfigFile())
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "/etc/stackpick.json")
		os.Args = []string{"testbin"}
		assert.Equal(t, "/etc/stackpick.json", ConfigFile())
	})

	t.Run("flag beats environment", func(t *testing.T) {
		t.Setenv(ConfigEnvVar, "/etc/stackpick.json")
		os.Args = []string{"testbin", "-c", "local.json"}
		assert.Equal(t, "local.json", ConfigFile())
	})
}
