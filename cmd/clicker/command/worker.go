package command

import (
	"context"
	"fmt"

	"github.com/pixil98/go-clicker/internal/driver"
	"github.com/pixil98/go-clicker/internal/game"
	"github.com/pixil98/go-clicker/internal/listener"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Embedded nats carries state events to watching players
	natsServer, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// Restore the saved game
	saves, err := cfg.Storage.BuildStorer()
	if err != nil {
		return nil, err
	}
	initial := game.LoadState(context.Background(), saves, cfg.Storage.slot())

	store := game.NewStore(initial,
		game.WithStorage(saves, cfg.Storage.slot()),
		game.WithPublisher(natsServer),
	)
	g := game.NewGame(store, game.WithSaveOnPurchase(cfg.Storage.saveOnPurchase()))

	loader, err := cfg.Catalog.BuildLoader(g)
	if err != nil {
		return nil, fmt.Errorf("creating catalog loader: %w", err)
	}

	players, err := cfg.Console.BuildPlayerManager(g, natsServer)
	if err != nil {
		return nil, fmt.Errorf("creating player manager: %w", err)
	}
	cm := listener.NewConnectionManager(players)

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		w, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("%s-%d", l.Protocol, i)] = w
	}

	// Income is paid out on every tick
	d := driver.NewDriver([]driver.Manager{g}, driver.WithTickLength(cfg.tickLength()))

	return service.WorkerList{
		"nats":      natsServer,
		"catalog":   loader,
		"driver":    d,
		"listeners": &listeners,
	}, nil
}
