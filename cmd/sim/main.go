package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"crazyrules/internal/config"
	"crazyrules/internal/rng"
	"crazyrules/internal/util"
	"crazyrules/pkg/game"
	"crazyrules/pkg/rules"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var (
	rounds    = flag.Int("rounds", 0, "number of rounds to play, overrides the configuration")
	seedHex   = flag.String("seed", "", "32 hex character seed, overrides the configuration")
	pause     = flag.Bool("pause", false, "ask before starting every round after the first")
	logWidth  = flag.Int("width", 72, "width of the printed log window")
	logHeight = flag.Int("height", 24, "height of the printed log window")
)

var errFrameLimit = errors.New("frame limit reached")

var errInvalidSeat = errors.New("no such seat")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	logger := logrus.WithField("run", util.NewRunID())

	seed, err := getSeed(cfg)
	if err != nil {
		logger.WithError(err).Fatal("could not parse seed")
	}

	humans, err := getHumans(cfg)
	if err != nil {
		logger.WithError(err).Fatal("could not parse human seats")
	}

	logger.WithField("seed", seed.String()).Info("starting session")

	opts := game.DefaultOptions()
	opts.Logger = logger
	opts.Humans = humans
	opts.LogCapacity = cfg.LogCapacity
	opts.RuleOptions = cfg.RuleOptions
	opts.OnViolation = func(msg string) {
		logger.Panic(msg)
	}

	session, err := game.NewSession(seed, opts, cfg.CarryRules)
	if err != nil {
		logger.WithError(err).Fatal("could not start session")
	}

	names := seatNames(seed)
	stdin := bufio.NewReader(os.Stdin)
	console := newConsole(stdin, os.Stdout, names)

	n := cfg.Rounds
	if *rounds > 0 {
		n = *rounds
	}

	for round := 1; round <= n; round++ {
		if round > 1 {
			if *pause {
				answer, err := getInput(stdin, "Next round (Y/n)")
				if err != nil || (answer != "" && strings.ToLower(answer)[0] != 'y') {
					break
				}
			}

			if err := session.NextRound(); err != nil {
				logger.WithError(err).Fatal("could not deal the next round")
			}
		}

		if err := playRound(session, console, cfg.FrameLimit); err != nil {
			logger.WithError(err).WithField("round", round).Fatal("round did not finish")
		}

		printRound(session, names)
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" || !term.IsTerminal(int(os.Stdout.Fd())) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func getSeed(cfg config.Config) (rng.Seed, error) {
	s := cfg.Seed
	if *seedHex != "" {
		s = *seedHex
	}

	if s == "" {
		return rng.Crypto{}.Seed(), nil
	}

	return rng.ParseSeed(s)
}

func getHumans(cfg config.Config) ([]rules.PlayerID, error) {
	humans := make([]rules.PlayerID, 0, len(cfg.HumanSeats))
	for _, seat := range cfg.HumanSeats {
		if seat < 0 || seat >= rules.NumPlayers {
			return nil, fmt.Errorf("%w: %d", errInvalidSeat, seat)
		}

		humans = append(humans, rules.PlayerID(seat))
	}

	return humans, nil
}

// seatNames are display names for the seats. They come from their own generator so the deal is unaffected.
func seatNames(seed rng.Seed) [rules.NumPlayers]string {
	var names [rules.NumPlayers]string
	gen := rng.NewXorshift(seed)
	for p := range names {
		names[p] = fmt.Sprintf("%s (%s)", rules.PlayerID(p), util.RandomName(gen))
	}

	return names
}

func playRound(session *game.Session, console *console, limit int) error {
	for frame := 0; frame < limit; frame++ {
		state := session.State()
		if state.Done() {
			return nil
		}

		in, err := console.Next(state)
		if err != nil {
			return err
		}

		session.Update(in)
	}

	return errFrameLimit
}

func printRound(session *game.Session, names [rules.NumPlayers]string) {
	state := session.State()
	winner, _ := state.Winner()

	fmt.Printf("\n== round %d, won by %s ==\n", session.Round(), names[winner])
	for _, line := range state.Log().Page(*logWidth, *logHeight, -1) {
		fmt.Println(line)
	}

	r := state.Rules()
	fmt.Printf("\nwild: %s\n", r.Wild)
	for _, g := range r.Effects.Groups() {
		fmt.Printf("%s: %s\n", g.Condition, rules.DescribeEffects(g.Effects))
	}
}

func getInput(r *bufio.Reader, prompt string) (string, error) {
	fmt.Printf("%s: ", prompt)
	text, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}
