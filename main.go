package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/naveen24691/zamboni/pkg/zamboni"
	cacheinit "github.com/naveen24691/zamboni/pkg/zamboni/cache/init"
	"github.com/naveen24691/zamboni/pkg/zamboni/db"
	dbinit "github.com/naveen24691/zamboni/pkg/zamboni/db/init"
	"github.com/naveen24691/zamboni/pkg/zamboni/locale"
	"github.com/naveen24691/zamboni/pkg/zamboni/log"
	"github.com/naveen24691/zamboni/pkg/zamboni/model"
	"github.com/naveen24691/zamboni/routes"
	"github.com/naveen24691/zamboni/routes/controller"
	"github.com/naveen24691/zamboni/templates"
)

func check(err error) {
	if err != nil {
		log.ERR(err.Error())
		os.Exit(1)
	}
}

// seedSampleData registers one packaged app with two versions so a
// fresh install has something to review. the comm thread of the
// latest version appears on its own the first time a note is posted.
func seedSampleData(dbif db.ZamboniDatabaseInterface) error {
	err := dbif.RegisterProduct(&model.Product{
		Slug: "sample-app",
		Name: "Sample App",
		Description: "A *packaged* sample app for trying out the reviewer tools.",
		IsPackaged: true,
		Status: model.PRODUCT_PENDING,
	})
	if err != nil { return err }
	now := time.Now().Unix()
	v1, err := dbif.RegisterVersion(&model.Version{
		ProductSlug: "sample-app",
		Version: "1.0",
		Created: now - 86400,
		DeveloperName: "sample-dev",
		ReleaseNotes: "Initial release.",
		Status: model.VERSION_PUBLIC,
	})
	if err != nil { return err }
	_, err = dbif.RegisterFile(&model.File{
		VersionID: v1,
		Filename: "sample-app-1.0.zip",
		Platform: "all",
		Size: 4096,
		Hash: "sha256:0000000000000000000000000000000000000000000000000000000000000000",
		Status: model.FILE_APPROVED,
	})
	if err != nil { return err }
	v2, err := dbif.RegisterVersion(&model.Version{
		ProductSlug: "sample-app",
		Version: "1.1",
		Created: now,
		DeveloperName: "sample-dev",
		ReleaseNotes: "Fixes the sample bug.",
		ApprovalNotes: "See https://example.com/review-policy for the checklist.",
		Status: model.VERSION_PENDING,
	})
	if err != nil { return err }
	_, err = dbif.RegisterFile(&model.File{
		VersionID: v2,
		Filename: "sample-app-1.1.zip",
		Platform: "all",
		Size: 4352,
		Hash: "sha256:1111111111111111111111111111111111111111111111111111111111111111",
		Status: model.FILE_PENDING,
	})
	return err
}

func main() {
	configPath := flag.String("config", "./zamboni-config.json", "path to the config file")
	install := flag.Bool("install", false, "create the database tables and exit")
	initConfig := flag.Bool("init", false, "create a default config file and exit")
	seed := flag.Bool("seed", false, "insert a sample app with versions and files, then exit")
	flag.Parse()

	if *initConfig {
		check(zamboni.CreateConfigFile(*configPath))
		log.INFO("Config file created at", *configPath)
		return
	}

	cfg, err := zamboni.LoadConfigFile(*configPath)
	check(err)

	dbif, err := dbinit.InitializeDatabase(cfg)
	check(err)
	defer dbif.Dispose()

	if *install {
		check(dbif.InstallTables())
		log.INFO("Database tables installed.")
		return
	}

	ok, err := dbif.IsDatabaseUsable()
	check(err)
	if !ok {
		log.ERR("Database not usable; run with -install first.")
		os.Exit(1)
	}

	if *seed {
		check(seedSampleData(dbif))
		log.INFO("Sample data inserted.")
		return
	}

	cacheif, err := cacheinit.InitializeCache(cfg)
	check(err)
	ok, err = cacheif.IsCacheUsable()
	check(err)
	if !ok {
		log.WARN("Cache not usable; fragments will be rendered on every request.")
	}

	t9n, err := locale.NewTranslator(cfg.Locale)
	check(err)
	masterTemplate := templates.LoadTemplate(t9n)

	ctx := &routes.RouterContext{
		Config: cfg,
		MasterTemplate: masterTemplate,
		DatabaseInterface: dbif,
		CacheInterface: cacheif,
	}
	if cfg.MaxRequestInSecond > 0 {
		ctx.RateLimiter = routes.NewRateLimiter(cfg)
	}
	controller.InitializeRoute(ctx)

	fs := http.FileServer(http.Dir(cfg.StaticAssetDirectory))
	http.Handle("GET /favicon.ico", fs)
	http.Handle("GET /static/", http.StripPrefix("/static/", fs))

	addr := fmt.Sprintf("%s:%d", cfg.BindAddress, cfg.BindPort)
	log.INFO("Serve at", addr)
	check(http.ListenAndServe(addr, nil))
}
