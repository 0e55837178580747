package questions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Built-in banks written on first run so a fresh install can play
// immediately. Existing files are never overwritten.
var defaultBanks = map[string][]string{
	"romantic": {
		"Where did we go on our first date?",
		"What dish would I pick for our anniversary dinner?",
		"Which city would I choose for our honeymoon?",
		"What is my favorite pet name for you?",
		"Which song do I think of as our song?",
		"What was I wearing when we first met?",
		"What gift of yours do I treasure the most?",
		"Which movie do I always want us to rewatch together?",
		"What do I usually order when we get coffee?",
		"Where would I want us to retire someday?",
		"What little habit of yours makes me smile?",
		"Which holiday do I most enjoy spending with you?",
		"What was the first compliment I gave you?",
		"Which flower would I buy you without asking?",
		"What is my dream weekend getaway with you?",
		"Which meal of yours do I brag about to others?",
		"What nickname did I almost give you instead?",
		"Which photo of us is my favorite?",
		"What would I say is our luckiest moment together?",
		"Where did I first realize I loved you?",
	},
	"friends": {
		"What snack do I always keep at my desk?",
		"Which game do I never admit to losing?",
		"What was the first trip we took together?",
		"Which band would I queue all night to see?",
		"What is my go-to karaoke song?",
		"Which teacher did we both complain about?",
		"What is the weirdest thing in my fridge right now?",
		"Which sport do I pretend to understand?",
		"What would I grab first if my house caught fire?",
		"Which of my stories do I retell the most?",
		"What drink do I order when someone else pays?",
		"Which chore do I put off the longest?",
		"What superpower would I pick?",
		"Which city do I keep saying I will move to?",
		"What is my most-used emoji?",
		"Which prank of ours went the furthest?",
		"What time do I actually wake up on weekends?",
		"Which app do I waste the most time on?",
		"What food do I claim to hate but secretly eat?",
		"Which celebrity do I insist I once met?",
	},
}

// EnsureDefaults creates dir and writes the built-in banks for any category
// that has no file yet.
func EnsureDefaults(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create questions dir: %w", err)
	}
	for name, qs := range defaultBanks {
		path := filepath.Join(dir, name+".json")
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat bank %s: %w", name, err)
		}
		data, err := json.MarshalIndent(qs, "", "  ")
		if err != nil {
			return fmt.Errorf("encode bank %s: %w", name, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write bank %s: %w", name, err)
		}
	}
	return nil
}
