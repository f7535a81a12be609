package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"higherlower/internal/game"
	"higherlower/internal/render"
	"higherlower/internal/store"
)

func main() {
	// Parse command line flags
	var (
		shuffleName = flag.String("shuffle", "fisher-yates", "Shuffle strategy: random, riffle, fisher-yates, weak")
		swaps       = flag.Int("swaps", game.DefaultWeakSwaps, "Swap count for the weak shuffle")
		score       = flag.Int("score", game.DefaultStartingScore, "Starting score")
		gain        = flag.Int("gain", game.DefaultCorrectGain, "Points gained on a correct guess")
		loss        = flag.Int("loss", game.DefaultWrongLoss, "Points lost on a wrong guess")
		cards       = flag.Int("cards", game.DefaultCardsPerRound, "Guesses per round")
		format      = flag.String("format", "text", "Output format: text, json, xml")
	)
	flag.Parse()

	config, err := game.NewConfigBuilder().
		StartingScore(*score).
		CorrectGain(*gain).
		WrongLoss(*loss).
		CardsPerRound(*cards).
		Build()
	if err != nil {
		log.Fatalf("Invalid game config: %v", err)
	}

	strategy, err := pickStrategy(*shuffleName, *swaps)
	if err != nil {
		log.Fatalf("Invalid shuffle strategy: %v", err)
	}

	renderer, err := render.NewRegistry().Renderer(render.Format(*format))
	if err != nil {
		log.Fatalf("Invalid output format: %v", err)
	}

	registry := game.NewFactoryRegistry()
	factory, err := registry.Factory(game.CardTypeStandard)
	if err != nil {
		log.Fatalf("Card factory unavailable: %v", err)
	}

	sessions := store.NewMemoryStore()

	fmt.Println("Welcome to Higher or Lower.")
	fmt.Println("You have to choose whether the next card to be shown will be higher or lower than the current card.")
	fmt.Printf("Getting it right adds %d points; get it wrong and you lose %d points.\n", config.CorrectGain, config.WrongLoss)
	fmt.Printf("You have %d points to start.\n\n", config.StartingScore)

	in := bufio.NewScanner(os.Stdin)
	for {
		session, err := playRound(in, factory, strategy, config, renderer)
		if err != nil {
			log.Fatalf("Round failed: %v", err)
		}
		if session == nil {
			break // player quit mid-round
		}
		if err := sessions.SaveSession(session); err != nil {
			log.Fatalf("Failed to record session: %v", err)
		}
		if session.Status == game.SessionLost {
			fmt.Println("You have no points left. Game over.")
			break
		}
		if session.Remaining() == 0 {
			fmt.Println("There are no more cards left in the deck.")
		} else {
			fmt.Printf("Round over after %d guesses.\n", session.Turns)
		}
		if !promptYesNo(in, "Play another round? (y/n): ") {
			break
		}
		fmt.Println()
	}

	printSummary(sessions)
}

// playRound runs one session to completion. It returns nil when the
// player quits before the session ends.
func playRound(in *bufio.Scanner, factory game.CardFactory, strategy game.ShuffleStrategy[game.Card], config game.Config, renderer render.Renderer) (*game.Session, error) {
	deck, err := game.NewDeck(factory, strategy, game.DefaultSuits(), game.DefaultRanks())
	if err != nil {
		return nil, err
	}

	session, err := game.NewSession(deck, config)
	if err != nil {
		return nil, err
	}

	for session.Status == game.SessionActive {
		card, err := renderer.RenderCard(session.Current)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Your current card is %s. You have %d points.\n", card, session.Score)

		guess, quit := promptGuess(in)
		if quit {
			return nil, nil
		}

		result, err := session.Guess(guess)
		if err != nil {
			if errors.Is(err, game.ErrEmptyDeck) {
				break
			}
			return nil, err
		}

		turn, err := renderer.RenderTurn(result)
		if err != nil {
			return nil, err
		}
		fmt.Println(turn)
	}

	return session, nil
}

func promptGuess(in *bufio.Scanner) (game.Guess, bool) {
	for {
		fmt.Print("Will the next card be higher or lower than the current card? (h/l, q to quit): ")
		if !in.Scan() {
			return "", true
		}
		answer := strings.ToLower(strings.TrimSpace(in.Text()))
		switch answer {
		case "h":
			return game.GuessHigher, false
		case "l":
			return game.GuessLower, false
		case "q":
			return "", true
		default:
			fmt.Println("Invalid input. Please enter 'h' for higher or 'l' for lower.")
		}
	}
}

func promptYesNo(in *bufio.Scanner, prompt string) bool {
	fmt.Print(prompt)
	if !in.Scan() {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(in.Text())), "y")
}

func pickStrategy(name string, swaps int) (game.ShuffleStrategy[game.Card], error) {
	switch name {
	case "random":
		return game.NewRandomShuffle[game.Card](), nil
	case "riffle":
		return game.NewRiffleShuffle[game.Card](), nil
	case "fisher-yates":
		return game.NewFisherYatesShuffle[game.Card](), nil
	case "weak":
		if swaps < 0 {
			return nil, fmt.Errorf("swap count must not be negative, got %d", swaps)
		}
		return game.NewWeakShuffle[game.Card](swaps), nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}

func printSummary(sessions *store.MemoryStore) {
	played, err := sessions.ListSessions()
	if err != nil || len(played) == 0 {
		return
	}

	fmt.Printf("\nYou played %d round(s):\n", len(played))
	for i, s := range played {
		fmt.Printf("  Round %d: %d points after %d guesses (%s)\n", i+1, s.Score, s.Turns, s.Status)
	}
}
