package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-clicker/internal/display"
)

type commandFunc func(ctx context.Context, s *Session, args []string) (string, error)

type command struct {
	Names []string
	Usage string
	Help  string
	run   commandFunc
}

var commands []command

func init() {
	commands = []command{
		{Names: []string{"code", "c"}, Usage: "code", Help: "write a line of code (an empty line does too)", run: cmdCode},
		{Names: []string{"buy", "b"}, Usage: "buy <item>", Help: "buy an item from the shop", run: cmdBuy},
		{Names: []string{"shop", "items"}, Usage: "shop", Help: "list what is for sale", run: cmdShop},
		{Names: []string{"owned", "inventory", "i"}, Usage: "owned", Help: "list the items you own", run: cmdOwned},
		{Names: []string{"score"}, Usage: "score", Help: "show your score", run: cmdScore},
		{Names: []string{"watch"}, Usage: "watch", Help: "follow your score as it changes", run: cmdWatch},
		{Names: []string{"unwatch"}, Usage: "unwatch", Help: "stop following your score", run: cmdUnwatch},
		{Names: []string{"help", "?"}, Usage: "help", Help: "show this list", run: cmdHelp},
		{Names: []string{"quit", "exit"}, Usage: "quit", Help: "leave the game", run: cmdQuit},
	}
}

func findCommand(name string) (command, bool) {
	name = strings.ToLower(name)
	for _, c := range commands {
		for _, n := range c.Names {
			if n == name {
				return c, true
			}
		}
	}
	return command{}, false
}

func cmdCode(ctx context.Context, s *Session, _ []string) (string, error) {
	return renderScore(s.game.Click(ctx))
}

func cmdBuy(ctx context.Context, s *Session, args []string) (string, error) {
	if len(args) == 0 {
		return "", NewUserError("Buy what?")
	}
	name := strings.Join(args, " ")

	st := s.game.State()
	item, ok := st.FindAvailable(name)
	if !ok {
		return "", NewUserError(fmt.Sprintf("There is no %q in the shop.", name))
	}
	if !st.CanAfford(item) {
		return "", NewUserError(fmt.Sprintf("You can't afford %s yet, it costs %s.", item.Name, display.Amount(item.Price)))
	}

	st, bought := s.game.Buy(ctx, item)
	if !bought {
		return "", NewUserError(fmt.Sprintf("You can't afford %s yet, it costs %s.", item.Name, display.Amount(item.Price)))
	}

	score, err := renderScore(st)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("You bought %s.\n%s", item.Name, score), nil
}

func cmdShop(_ context.Context, s *Session, _ []string) (string, error) {
	return render(shopTemplate, s.game.State())
}

func cmdOwned(_ context.Context, s *Session, _ []string) (string, error) {
	return render(ownedTemplate, s.game.State())
}

func cmdScore(_ context.Context, s *Session, _ []string) (string, error) {
	return renderScore(s.game.State())
}

func cmdWatch(_ context.Context, s *Session, _ []string) (string, error) {
	if err := s.watch(); err != nil {
		return "", err
	}
	return "Watching your score. Type 'unwatch' to stop.", nil
}

func cmdUnwatch(_ context.Context, s *Session, _ []string) (string, error) {
	if !s.unwatch() {
		return "", NewUserError("You aren't watching anything.")
	}
	return "Stopped watching.", nil
}

func cmdHelp(_ context.Context, _ *Session, _ []string) (string, error) {
	return render(helpTemplate, commands)
}

func cmdQuit(_ context.Context, s *Session, _ []string) (string, error) {
	s.quit = true
	return "Goodbye!", nil
}
