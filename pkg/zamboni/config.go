package zamboni

import (
	"encoding/json"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
)

type ZamboniConfig struct {
	FilePath string
	// the version of the configuration file. currently only 0 is
	// allowed.
	Version int `json:"version"`

	// the name of the site (i.e. what's shown at the top of every
	// reviewer page).
	SiteName string `json:"siteName"`
	StaticAssetDirectory string `json:"staticAssetDirectory"`

	// http host name. used when generating absolute urls (e.g. the
	// urls handed to the commbadge client thru data attributes).
	HttpHostName string `json:"hostName"`
	properHttpHostName string

	BindAddress string `json:"bindAddress"`
	BindPort int `json:"bindPort"`

	// locale used for message catalog lookup, e.g. "en-US".
	Locale string `json:"locale"`

	// when set to true, the history view would render compare links
	// for the latest version of packaged apps whenever a diff target
	// can be resolved.
	EnableVersionCompare bool `json:"enableVersionCompare"`

	// requests per second allowed for a single ip. 0 disables
	// rate limiting.
	MaxRequestInSecond int `json:"maxRequestInSecond"`

	Database ZamboniDatabaseConfig `json:"database"`
	Cache ZamboniCacheConfig `json:"cache"`
}

type ZamboniDatabaseConfig struct {
	// database type. currently supports "sqlite" and "postgres".
	Type string `json:"type"`
	// path to the database file. valid only when dbtype is sqlite;
	// has no effect otherwise.
	Path string `json:"path"`
	properPath string
	// url to the database. valid only when dbtype is something that
	// is "hosted" as a server (unlike sqlite which is just one file).
	// has no effect when dbtype is sqlite.
	URL string `json:"url"`
	UserName string `json:"userName"`
	DatabaseName string `json:"databaseName"`
	Password string `json:"password"`
	// table prefix of the database - in case you need to make your
	// zamboni instance share a database with other applications.
	TablePrefix string `json:"tablePrefix"`
}

type ZamboniCacheConfig struct {
	// cache type. currently supports:
	// + "memory" (in-process ttl cache)
	// + redis-like dbs: "redis", "keydb", "valkey"
	// + "memcached"
	Type string `json:"type"`
	// key prefix used for redis-like dbs and memcached.
	KeyPrefix string `json:"keyPrefix"`
	// cache host, in the format of "host:port". not used for "memory".
	Host string `json:"host"`
	// username & password. not used for "memory" and "memcached".
	UserName string `json:"userName"`
	Password string `json:"password"`
	// database number. valid only when type is a redis-like db.
	DatabaseNumber int `json:"databaseNumber"`
	// ttl of cached fragments, in seconds. 0 means no expiry.
	TimeoutSecond int `json:"timeoutSecond"`
}

func (cfg *ZamboniConfig) ProperHTTPHostName() string {
	return cfg.properHttpHostName
}

func (cfg *ZamboniConfig) ProperDatabasePath() string {
	return cfg.Database.properPath
}

func (c *ZamboniConfig) RecalculateProperPath() error {
	c.properHttpHostName = c.HttpHostName
	if strings.TrimSpace(c.HttpHostName) != "" {
		if !strings.HasPrefix(c.properHttpHostName, "http://") && !strings.HasPrefix(c.properHttpHostName, "https://") {
			c.properHttpHostName = "http://" + c.properHttpHostName
		}
		c.properHttpHostName = strings.TrimSuffix(c.properHttpHostName, "/")
	} else { c.properHttpHostName = "" }

	configDir := path.Dir(c.FilePath)
	if c.Database.Type == "sqlite" {
		var rp string
		if path.IsAbs(c.Database.Path) {
			rp = c.Database.Path
		} else {
			rp = path.Join(configDir, c.Database.Path)
		}
		c.Database.properPath = rp
	}
	return nil
}

func LoadConfigFile(p string) (*ZamboniConfig, error) {
	s, err := os.ReadFile(p)
	if err != nil { return nil, errors.Wrap(err, "failed to read config file") }
	var c ZamboniConfig
	err = json.Unmarshal(s, &c)
	if err != nil { return nil, errors.Wrap(err, "failed to parse config file") }
	c.FilePath = p
	err = c.RecalculateProperPath()
	if err != nil { return nil, err }
	return &c, nil
}

func CreateConfigFile(p string) error {
	f, err := os.OpenFile(
		p,
		os.O_CREATE|os.O_EXCL|os.O_WRONLY|os.O_TRUNC,
		0644,
	)
	if err != nil { return err }
	defer f.Close()
	marshalRes, err := json.MarshalIndent(ZamboniConfig{
		Version: 0,
		SiteName: "Zamboni Reviewer Tools",
		StaticAssetDirectory: "static/",
		HttpHostName: "http://127.0.0.1:8000",
		BindAddress: "127.0.0.1",
		BindPort: 8000,
		Locale: "en-US",
		EnableVersionCompare: true,
		MaxRequestInSecond: 8,
		Database: ZamboniDatabaseConfig{
			Type: "sqlite",
			Path: "zamboni.db",
			URL: "",
			UserName: "",
			DatabaseName: "",
			Password: "",
			TablePrefix: "zamboni",
		},
		Cache: ZamboniCacheConfig{
			Type: "memory",
			KeyPrefix: "zamboni",
			Host: "",
			UserName: "",
			Password: "",
			DatabaseNumber: 0,
			TimeoutSecond: 300,
		},
	}, "", "    ")
	if err != nil { return err }
	_, err = f.Write(marshalRes)
	if err != nil { return err }
	return nil
}

func (cfg *ZamboniConfig) Sync() error {
	p := cfg.FilePath
	s, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil { return err }
	st, err := os.Stat(p)
	if err != nil && !os.IsNotExist(err) { return err }
	var f *os.File
	if os.IsNotExist(err) {
		f, err = os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	} else {
		f, err = os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, st.Mode())
	}
	if err != nil { return err }
	defer f.Close()
	_, err = f.Write(s)
	if err != nil { return err }
	err = f.Sync()
	if err != nil { return err }
	return nil
}
