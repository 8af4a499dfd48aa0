package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/urbanmorph/transport-qol-api/api"
	"github.com/urbanmorph/transport-qol-api/cache"
	"github.com/urbanmorph/transport-qol-api/poller"
	"github.com/urbanmorph/transport-qol-api/schema"
	"github.com/urbanmorph/transport-qol-api/score"
	"github.com/urbanmorph/transport-qol-api/store"
	"github.com/urbanmorph/transport-qol-api/utils"
)

func initConfig(file string) {
	viper.SetConfigFile(file)
	viper.SetEnvPrefix("qol")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.WithError(err).Warn("no config file loaded, using environment only")
	}

	if viper.GetBool("log.debug") {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

func connectMongo(ctx context.Context) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(viper.GetString("mongo.conn")).
		SetMaxPoolSize(uint64(viper.GetInt("mongo.pool")))
	client, err := mongo.NewClient(opts)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "configuration file path")
	flag.Parse()

	initConfig(configFile)
	utils.InitI18NBundle()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var qolStore store.QoLStore
	baseline := schema.DefaultBaseline
	var facts score.FactProvider = score.NewStaticFacts()

	if connURI := viper.GetString("mongo.conn"); connURI != "" {
		connectCtx, connectCancel := context.WithTimeout(ctx, 30*time.Second)
		mongoClient, err := connectMongo(connectCtx)
		connectCancel()
		if err != nil {
			log.WithError(err).Fatal("fail to connect mongodb")
		}

		if err := schema.NewMongoDBIndexer(connURI, viper.GetString("mongo.database")).IndexAll(); err != nil {
			log.WithError(err).Fatal("fail to create mongodb indexes")
		}

		qolStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

		if viper.GetBool("mongo.seed") {
			if err := qolStore.SeedBaseline(schema.DefaultBaseline); err != nil {
				log.WithError(err).Fatal("fail to seed baseline")
			}
			if err := qolStore.SeedFacts(); err != nil {
				log.WithError(err).Fatal("fail to seed facts")
			}
		}

		stored, err := qolStore.ListCityValues()
		if err != nil {
			log.WithError(err).Fatal("fail to load baseline")
		}
		if len(stored) > 0 {
			baseline = stored
		}
		facts = qolStore
	} else {
		log.Warn("mongo.conn not set, serving built-in baseline without persistence")
	}

	liveData := cache.NewLiveData(viper.GetString("redis.conn"))
	engine := score.NewEngine(baseline, facts)

	if endpoint := viper.GetString("aqair.endpoint"); endpoint != "" {
		cityNames := viper.GetStringMapString("aqair.cities")
		source := poller.NewAQAirSource(endpoint, viper.GetString("aqair.apikey"), cityNames)
		interval := viper.GetDuration("aqair.interval")
		if interval == 0 {
			interval = time.Hour
		}
		go poller.New(source, liveData, engine.CityIDs(), interval).Run(ctx)
	}

	server := api.NewServer(engine, qolStore, liveData, viper.GetBool("server.trace"))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		log.Info("shutting down")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("fail to shut down server")
		}
		if qolStore != nil {
			if err := qolStore.Close(shutdownCtx); err != nil {
				log.WithError(err).Error("fail to disconnect mongodb")
			}
		}
	}()

	log.WithField("addr", viper.GetString("server.addr")).Info("starting qol api server")
	if err := server.Run(viper.GetString("server.addr")); err != nil {
		log.WithError(err).Info("server stopped")
	}
}
