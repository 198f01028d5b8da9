package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/stackpick/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the catalog server
//	-i int      online check interval in seconds
//	-f string   local cache DSN
//	-o string   download directory
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs so unrelated flags are ignored.
// A flag that is not given leaves the value from defaults or JSON untouched,
// so a sub-second JSON interval survives. -i must be positive.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-f", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.Func("i", "online check interval (in seconds)", func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("online check interval must be positive, got %d", n)
		}
		cfg.OnlineCheckInterval = time.Duration(n) * time.Second
		return nil
	})
	fs.StringVar(&cfg.CacheDSN, "f", cfg.CacheDSN, "local cache DSN")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "download directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
