// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package catalog

const romantic Tag = "romantic"

func tagged(title, description string, year int, director string, tags ...Tag) TagScoredFilm {
	return TagScoredFilm{
		Details: NewDetails(title, description, year, director),
		Tags:    NewTagSet(tags...),
	}
}

var staticFilms = []TagScoredFilm{
	// Light and comforting
	tagged("Amélie", "Whimsy and magic in ordinary Parisian moments.", 2001, "Jean-Pierre Jeunet",
		Light, ComfortTag, Contemporary, "vibrant"),
	tagged("The Grand Budapest Hotel", "A beautifully composed pastiche of elegance and melancholy.", 2014, "Wes Anderson",
		Light, ComfortTag, Contemporary, SocialTag),
	tagged("Paddington 2", "Pure-hearted adventure wrapped in British charm.", 2017, "Paul King",
		Light, ComfortTag, Contemporary, SocialTag),

	// Heavy and challenging
	tagged("Requiem for a Dream", "Descent into addiction rendered with visceral poetry.", 2000, "Darren Aronofsky",
		Heavy, Challenge, Contemporary, Solo),
	tagged("Come and See", "War through the eyes of a boy—devastating and unforgettable.", 1985, "Elem Klimov",
		Heavy, Challenge, Real),
	tagged("Synecdoche, New York", "Reality collapses into art in this labyrinthine meditation.", 2008, "Charlie Kaufman",
		Heavy, Challenge, Dreamlike, Contemporary),

	// Slow burn
	tagged("Stalker", "A meditative journey through emotion and existential wonder.", 1979, "Andrei Tarkovsky",
		Slow, Dreamlike, Classic, Challenge),
	tagged("In the Mood for Love", "Repressed desire blooms through frames of saturated color.", 2000, "Wong Kar-wai",
		Slow, Dreamlike, Contemporary, romantic),
	tagged("Tokyo Story", "Profound humanity emerges from quiet domestic moments.", 1953, "Yasujirō Ozu",
		Slow, Real, Classic, SocialTag),

	// Fast
	tagged("Parasite", "Class warfare explodes with dark comic energy and precision.", 2019, "Bong Joon-ho",
		Fast, Heavy, Contemporary, SocialTag),
	tagged("Mad Max: Fury Road", "Pure kinetic poetry—a two-hour chase driven by visual perfection.", 2015, "George Miller",
		Fast, Heavy, Contemporary, Challenge),
	tagged("Terminator 2", "Action elevated to art through innovation and precision.", 1991, "James Cameron",
		Fast, Challenge, Contemporary),

	// Dreamlike
	tagged("Mulholland Drive", "Dreams collapse into deception in this shimmering fever dream.", 2001, "David Lynch",
		Dreamlike, Heavy, Contemporary, Solo),
	tagged("Pan's Labyrinth", "Myth and fascism collide in a haunting visual fantasia.", 2006, "Guillermo del Toro",
		Dreamlike, Heavy, Contemporary, Challenge),
	tagged("The Fountain", "Three eras of love and loss rendered in visual wonder.", 2006, "Darren Aronofsky",
		Dreamlike, Heavy, Contemporary, Solo),

	// Real and contemporary
	tagged("Before Sunrise", "Two strangers discover connection through language and presence.", 1995, "Richard Linklater",
		Real, Contemporary, Solo, Slow),
	tagged("Boyhood", "Twelve years of life captured with intimate authenticity.", 2014, "Richard Linklater",
		Real, Contemporary, Slow, SocialTag),
	tagged("Moonlight", "Three moments in a life rendered with poetic grace.", 2016, "Barry Jenkins",
		Real, Contemporary, Slow, Solo),

	// Classic
	tagged("The Seventh Seal", "A knight confronts mortality with quiet philosophical grace.", 1957, "Ingmar Bergman",
		Classic, Heavy, Challenge, Slow),
	tagged("Vertigo", "Obsession rendered as visual mastery and psychological torment.", 1958, "Alfred Hitchcock",
		Classic, Challenge, Slow, Solo),
	tagged("Casablanca", "Sacrifice and romance amid wartime intrigue.", 1942, "Michael Curtiz",
		Classic, Heavy, SocialTag, romantic),

	// Social
	tagged("Chungking Express", "Chance encounters blossom into unexpected romance.", 1994, "Wong Kar-wai",
		SocialTag, Dreamlike, Contemporary, Light),
	tagged("Memories of Murder", "A procedural spiral into darkness and moral ambiguity.", 2003, "Bong Joon-ho",
		SocialTag, Heavy, Contemporary, Challenge),
	tagged("La La Land", "Romance and ambition dance through a modern city.", 2016, "Damien Chazelle",
		SocialTag, Light, Contemporary, romantic),
}

// defaultTitles is the fallback list served when recommendation fails.
var defaultTitles = []string{
	"Stalker",
	"Mulholland Drive",
	"Before Sunrise",
	"The Seventh Seal",
	"Chungking Express",
	"Memories of Murder",
	"Amélie",
	"The Grand Budapest Hotel",
}

// Static returns the tag-scored catalog in declaration order.
func Static() []Film {
	out := make([]Film, len(staticFilms))
	for i, f := range staticFilms {
		out[i] = f
	}
	return out
}

// Defaults returns the fallback film list in fixed order, without posters.
func Defaults() []Details {
	byTitle := make(map[string]Details, len(staticFilms))
	for _, f := range staticFilms {
		byTitle[f.Title] = f.Details
	}
	out := make([]Details, 0, len(defaultTitles))
	for _, title := range defaultTitles {
		out = append(out, byTitle[title])
	}
	return out
}
