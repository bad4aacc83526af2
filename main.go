package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	natsgo "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"president.com/server/game"
	"president.com/server/gamescript"
	"president.com/server/logging"
	"president.com/server/nats"
	"president.com/server/rest"
	"president.com/server/timer"
	"president.com/server/util"
	"president.com/server/ws"
)

var runServer *bool
var runGameScriptTests *bool
var gameScriptsFileOrDir *string
var testName *string
var logLevel *string
var mainLogger = logging.GetZeroLogger("main::main", nil)

func init() {
	runServer = flag.Bool("server", true, "runs game server")
	runGameScriptTests = flag.Bool("script-tests", false, "runs script tests")
	gameScriptsFileOrDir = flag.String("game-script", "gamescript/test_scripts", "runs tests with game script files")
	testName = flag.String("testname", "", "runs a specific test")
	logLevel = flag.String("log-level", "info", "zerolog log level")
}

func main() {
	// Global random seed that is used by all sessions.
	rand.Seed(util.NewSeed())

	err := run()
	if err != nil {
		mainLogger.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		return errors.Wrapf(err, "Invalid log level [%s]", *logLevel)
	}
	zerolog.SetGlobalLevel(level)

	if *runGameScriptTests {
		return gamescript.RunScripts(*gameScriptsFileOrDir, *testName)
	}
	if !*runServer {
		return nil
	}

	tracker, err := createTracker()
	if err != nil {
		return errors.Wrap(err, "Error while creating session tracker")
	}
	manager, err := game.NewSessionManager(tracker)
	if err != nil {
		return errors.Wrap(err, "Error while creating session manager")
	}
	hub := ws.NewHub(manager)

	var natsConn *natsgo.Conn
	if !util.Env.ShouldDisableNats() {
		natsURL := util.Env.GetNatsURL()
		mainLogger.Info().Msgf("NATS URL: %s", natsURL)
		natsConn, err = nats.Connect(natsURL)
		if err != nil {
			return err
		}
	}

	makeReceiver := func(sessionID string, code string) (game.MessageReceiver, error) {
		room := ws.NewRoomReceiver(hub, code)
		if natsConn == nil {
			return room, nil
		}
		natsSession, err := nats.NewNatsSession(natsConn, code, manager.SessionByCode)
		if err != nil {
			return nil, err
		}
		return game.CombineReceivers(room, natsSession), nil
	}

	pacer := timer.NewPacer(time.Second)
	pacer.Start()
	defer pacer.Stop()

	port := util.Env.GetPort()
	mainLogger.Info().Msgf("Running the server on port %d", port)
	rest.RunRestServer(manager, hub, makeReceiver, pacer, port)
	return nil
}

func createTracker() (game.SessionTracker, error) {
	persistMethod := util.Env.GetPersistMethod()
	switch persistMethod {
	case "memory":
		return game.NewMemorySessionTracker(), nil
	case "redis":
		redisAddr := fmt.Sprintf("%s:%d", util.Env.GetRedisHost(), util.Env.GetRedisPort())
		return game.NewRedisSessionTracker(redisAddr, util.Env.GetRedisPW(), util.Env.GetRedisDB()), nil
	}
	return nil, errors.Errorf("Invalid persist method [%s]", persistMethod)
}
