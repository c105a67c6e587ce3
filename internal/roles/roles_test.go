// internal/roles/roles_test.go
package roles

import (
	"testing"

	"github.com/shortreel/promptforge/internal/models"
)

func findOption(opts []Option, role models.Role) (Option, bool) {
	for _, o := range opts {
		if o.Value == role {
			return o, true
		}
	}
	return Option{}, false
}

func TestExactThemeMatch(t *testing.T) {
	opts := Resolve("demon hunter in modern times", "supernatural")
	hero, ok := findOption(opts, models.RoleHero)
	if !ok {
		t.Fatal("hero option missing")
	}
	if hero.Label != "Demon Hunter" {
		t.Errorf("hero label: %q", hero.Label)
	}
	mother, _ := findOption(opts, models.RoleMother)
	if mother.Label != "Spirit Guide" {
		t.Errorf("mother label: %q", mother.Label)
	}
}

func TestExactMatchIsCaseAndSpaceInsensitive(t *testing.T) {
	opts := Resolve("  Demon Hunter In Modern Times  ", "comedy")
	hero, _ := findOption(opts, models.RoleHero)
	if hero.Label != "Demon Hunter" {
		t.Errorf("hero label: %q", hero.Label)
	}
}

func TestPartialThemeMatch(t *testing.T) {
	// "village" 和 "curse" 两个词命中 "village curse awakens"
	opts := Resolve("an ancient curse over my village", "comedy")
	hero, _ := findOption(opts, models.RoleHero)
	if hero.Label != "Outsider" {
		t.Errorf("hero label: %q", hero.Label)
	}
}

func TestPartialMatchFirstEntryWins(t *testing.T) {
	// "family" 出现在多个键里；最早声明的含两个命中词的键必须胜出。
	// "guardian spirit protects family" 的 "spirit" 和 "family" 都命中。
	opts := Resolve("a spirit watches over the family", "comedy")
	mother, _ := findOption(opts, models.RoleMother)
	if mother.Label != "Guardian Spirit" {
		t.Errorf("mother label: %q", mother.Label)
	}
}

func TestGenreFallback(t *testing.T) {
	opts := Resolve("completely unknown gibberish theme", "comedy")
	hero, _ := findOption(opts, models.RoleHero)
	if hero.Label != "Wrong Person" {
		t.Errorf("hero label: %q", hero.Label)
	}

	// 空主题直接走题材兜底
	opts = Resolve("", "comedy")
	hero, _ = findOption(opts, models.RoleHero)
	if hero.Label != "Wrong Person" {
		t.Errorf("hero label for empty theme: %q", hero.Label)
	}
}

func TestGenericFallback(t *testing.T) {
	opts := Resolve("", "not-a-genre")
	hero, _ := findOption(opts, models.RoleHero)
	if hero.Label != "Hero" {
		t.Errorf("hero label: %q", hero.Label)
	}
	crowd, _ := findOption(opts, models.RoleCrowd)
	if crowd.Label != "Extra" {
		t.Errorf("crowd label: %q", crowd.Label)
	}
}

func TestOptionCountAndOrder(t *testing.T) {
	opts := Resolve("", "horror")
	if len(opts) != 7 {
		t.Fatalf("expected 7 options, got %d", len(opts))
	}
	wantOrder := []models.Role{
		models.RoleHero, models.RoleVillain, models.RoleLoveInterest,
		models.RoleMother, models.RoleSidekick, models.RoleSupporting, models.RoleCrowd,
	}
	for i, want := range wantOrder {
		if opts[i].Value != want {
			t.Errorf("position %d: got %s, want %s", i, opts[i].Value, want)
		}
	}
}

func TestDefaultSelected(t *testing.T) {
	tests := []struct {
		name  string
		theme string
		genre string
		want  []models.Role
	}{
		{"family drama adds mother", "mother's sacrifice for children", "family-drama",
			[]models.Role{models.RoleHero, models.RoleVillain, models.RoleMother}},
		{"romantic drama adds love interest", "", "romantic-drama",
			[]models.Role{models.RoleHero, models.RoleVillain, models.RoleLoveInterest}},
		{"comedy adds sidekick", "", "comedy",
			[]models.Role{models.RoleHero, models.RoleVillain, models.RoleSidekick}},
		{"unknown genre keeps hero and villain", "", "not-a-genre",
			[]models.Role{models.RoleHero, models.RoleVillain}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultSelected(tt.theme, tt.genre)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("position %d: got %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDefaultSelectedNoDuplicates(t *testing.T) {
	for _, genre := range []string{"romantic-drama", "family-drama", "action-thriller", "horror",
		"comedy", "mystery", "revenge-saga", "supernatural", "inspirational", "village-drama"} {
		seen := make(map[models.Role]bool)
		for _, r := range DefaultSelected("", genre) {
			if seen[r] {
				t.Errorf("%s: duplicate role %s", genre, r)
			}
			seen[r] = true
		}
	}
}
