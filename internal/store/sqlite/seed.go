package sqlite

import (
	"time"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
)

// builtinCategories are the five undeletable categories installed on first run.
var builtinCategories = []domain.Category{
	{Name: "Movies", Icon: "🎬", Color: "#ef4444", IsSystem: true},
	{Name: "TV Shows", Icon: "📺", Color: "#f97316", IsSystem: true},
	{Name: "Books", Icon: "📚", Color: "#22c55e", IsSystem: true},
	{Name: "Games", Icon: "🎮", Color: "#3b82f6", IsSystem: true},
	{Name: "Albums", Icon: "🎵", Color: "#a855f7", IsSystem: true},
}

// genreSeeds are per-category genre pick-lists, keyed by category name.
var genreSeeds = map[string][]string{
	"Movies": {"Action", "Adventure", "Animation", "Comedy", "Crime", "Documentary",
		"Drama", "Fantasy", "Horror", "Musical", "Romance", "Sci-Fi",
		"Thriller", "Western"},
	"TV Shows": {"Action", "Anime", "Comedy", "Crime", "Documentary", "Drama",
		"Fantasy", "Horror", "Reality", "Sci-Fi", "Thriller"},
	"Books": {"Biography", "Fantasy", "Fiction", "Graphic Novel", "History",
		"Horror", "Mystery", "Non-Fiction", "Romance", "Sci-Fi",
		"Self-Help", "Thriller", "Travel"},
	"Games": {"Action", "Adventure", "Fighting", "FPS", "Horror", "MMORPG",
		"Platformer", "Puzzle", "Racing", "RPG", "Simulation",
		"Sports", "Strategy"},
	"Albums": {"Blues", "Classical", "Country", "Electronic", "Folk", "Hip-Hop",
		"Jazz", "Metal", "Pop", "Punk", "R&B", "Reggae", "Rock", "Soul"},
}

// subGenreSeeds are per-category sub-genre pick-lists (Albums only for now).
var subGenreSeeds = map[string][]string{
	"Albums": {"Ambient", "Bebop", "Classic Rock", "Death Metal", "Deep House",
		"Drum & Bass", "Funk", "Gospel", "Hard Rock", "Hardcore",
		"House", "Indie Pop", "Indie Rock", "Lo-fi", "New Wave",
		"Post-Rock", "Progressive Rock", "Synthpop", "Techno", "Trip-Hop"},
}

// sharedSeeds are global (category_id NULL) pick-lists, keyed by field type.
// Iterated via sharedSeedOrder so sort_order assignment is deterministic.
var sharedSeeds = map[string][]string{
	"author": {"Unknown Author"},
	"publisher": {"Penguin Random House", "HarperCollins", "Simon & Schuster",
		"Macmillan", "Hachette", "Self-Published"},
	"format_book": {"Hardcover", "Paperback", "eBook", "Audiobook", "Large Print"},
	"director":    {"Unknown Director"},
	"studio": {"Warner Bros.", "Universal Pictures", "Sony Pictures",
		"Paramount Pictures", "Walt Disney Studios", "A24",
		"Netflix", "Amazon Studios", "Apple TV+", "HBO"},
	"format_movie": {"Blu-ray", "DVD", "Digital", "Streaming", "4K UHD", "VHS"},
	"developer": {"Unknown Developer", "Nintendo", "Valve", "CD Projekt Red",
		"Rockstar Games", "Naughty Dog", "FromSoftware",
		"Bethesda", "Ubisoft", "EA", "Activision", "Capcom"},
	"platform": {"PC", "PlayStation 5", "PlayStation 4", "Xbox Series X",
		"Xbox One", "Nintendo Switch", "Nintendo 3DS", "iOS",
		"Android", "Steam Deck"},
	"format_game": {"Physical", "Digital", "Cartridge", "Disc"},
	"artist":      {"Unknown Artist"},
	"label": {"Unknown Label", "Columbia Records", "Universal Music",
		"Warner Music", "Sony Music", "Republic Records",
		"Atlantic Records", "Def Jam", "Sub Pop", "Domino Records"},
	"format_album": {"Vinyl", "CD", "Cassette", "Digital", "Streaming", "8-Track"},
	"cast":         {},
}

// sharedSeedOrder fixes iteration order over sharedSeeds.
var sharedSeedOrder = []string{
	"author", "publisher", "format_book",
	"director", "studio", "format_movie",
	"developer", "platform", "format_game",
	"artist", "label", "format_album",
	"cast",
}

// seed installs built-in categories and default pick-lists. The two gates
// are independent: categories seed only when the categories table is empty,
// pick-lists only when field_values is empty.
func (s *Store) seed() error {
	if err := s.seedCategories(); err != nil {
		return err
	}
	return s.seedFieldValues()
}

func (s *Store) seedCategories() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := formatTime(time.Now().UTC())
	for _, c := range builtinCategories {
		_, err := s.db.Exec(`
			INSERT INTO categories (name, icon, color, is_system, created_at)
			VALUES (?, ?, ?, 1, ?)`,
			c.Name, c.Icon, c.Color, now,
		)
		if err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info("Seeded built-in categories", "count", len(builtinCategories))
	}
	return nil
}

func (s *Store) seedFieldValues() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM field_values`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catIDs, err := s.categoryIDsByName()
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insert := func(fieldType string, categoryID any, value string, sortOrder int) error {
		_, err := tx.Exec(`
			INSERT INTO field_values (field_type, category_id, value, sort_order)
			VALUES (?, ?, ?, ?)`,
			fieldType, categoryID, value, sortOrder,
		)
		return err
	}

	for _, c := range builtinCategories {
		catID, ok := catIDs[c.Name]
		if !ok {
			continue
		}
		for i, g := range genreSeeds[c.Name] {
			if err := insert("genre", catID, g, i); err != nil {
				return err
			}
		}
		for i, sg := range subGenreSeeds[c.Name] {
			if err := insert("sub_genre", catID, sg, i); err != nil {
				return err
			}
		}
	}

	total := 0
	for _, fieldType := range sharedSeedOrder {
		for i, v := range sharedSeeds[fieldType] {
			if err := insert(fieldType, nil, v, i); err != nil {
				return err
			}
			total++
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("Seeded default field values", "shared", total)
	}
	return nil
}

// categoryIDsByName returns a name→id map of the current categories.
func (s *Store) categoryIDsByName() (map[string]int64, error) {
	rows, err := s.db.Query(`SELECT id, name FROM categories`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]int64)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		ids[name] = id
	}
	return ids, rows.Err()
}

// ReseedFieldType re-inserts the default pick-list for a single field type,
// skipping values that already exist. Used by the seed maintenance command.
func (s *Store) ReseedFieldType(fieldType string) (int, error) {
	catIDs, err := s.categoryIDsByName()
	if err != nil {
		return 0, err
	}

	inserted := 0
	insert := func(categoryID any, value string, sortOrder int) error {
		res, err := s.db.Exec(`
			INSERT OR IGNORE INTO field_values (field_type, category_id, value, sort_order)
			VALUES (?, ?, ?, ?)`,
			fieldType, categoryID, value, sortOrder,
		)
		if err != nil {
			return err
		}
		n, _ := res.RowsAffected()
		inserted += int(n)
		return nil
	}

	switch fieldType {
	case "genre":
		for name, values := range genreSeeds {
			catID, ok := catIDs[name]
			if !ok {
				continue
			}
			for i, v := range values {
				if err := insert(catID, v, i); err != nil {
					return inserted, err
				}
			}
		}
	case "sub_genre":
		for name, values := range subGenreSeeds {
			catID, ok := catIDs[name]
			if !ok {
				continue
			}
			for i, v := range values {
				if err := insert(catID, v, i); err != nil {
					return inserted, err
				}
			}
		}
	default:
		for i, v := range sharedSeeds[fieldType] {
			if err := insert(nil, v, i); err != nil {
				return inserted, err
			}
		}
	}

	return inserted, nil
}

// SeededFieldTypes lists every field type with default seed data.
func SeededFieldTypes() []string {
	types := []string{"genre", "sub_genre"}
	return append(types, sharedSeedOrder...)
}
