// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package catalog

import "github.com/tomtom215/moodreel/internal/mood"

// position lists axis values in mood.ExtendedAxes order.
func position(weight, pace, comfort, reality, era, social, tone, dialogue float64) mood.Vector {
	return mood.Vector{
		mood.Weight:   weight,
		mood.Pace:     pace,
		mood.Comfort:  comfort,
		mood.Reality:  reality,
		mood.Era:      era,
		mood.Social:   social,
		mood.Tone:     tone,
		mood.Dialogue: dialogue,
	}
}

func placed(title, description string, year int, director string, pos mood.Vector) DimensionScoredFilm {
	return DimensionScoredFilm{
		Details:  NewDetails(title, description, year, director),
		Position: pos,
	}
}

var denseFilms = []DimensionScoredFilm{
	placed("Amélie", "Whimsy and magic in ordinary Parisian moments.", 2001, "Jean-Pierre Jeunet",
		position(15, 55, 90, 35, 75, 45, 90, 40)),
	placed("Paddington 2", "Pure-hearted adventure wrapped in British charm.", 2017, "Paul King",
		position(5, 65, 95, 40, 90, 70, 95, 55)),
	placed("Come and See", "War through the eyes of a boy—devastating and unforgettable.", 1985, "Elem Klimov",
		position(100, 45, 0, 85, 35, 40, 0, 20)),
	placed("Stalker", "A meditative journey through emotion and existential wonder.", 1979, "Andrei Tarkovsky",
		position(80, 5, 10, 20, 15, 30, 25, 60)),
	placed("Tokyo Story", "Profound humanity emerges from quiet domestic moments.", 1953, "Yasujirō Ozu",
		position(65, 10, 55, 95, 5, 75, 40, 65)),
	placed("Mad Max: Fury Road", "Pure kinetic poetry—a two-hour chase driven by visual perfection.", 2015, "George Miller",
		position(60, 100, 30, 45, 95, 60, 55, 5)),
	placed("Mulholland Drive", "Dreams collapse into deception in this shimmering fever dream.", 2001, "David Lynch",
		position(75, 35, 10, 5, 75, 30, 15, 45)),
	placed("Before Sunrise", "Two strangers discover connection through language and presence.", 1995, "Richard Linklater",
		position(30, 20, 75, 90, 65, 50, 75, 100)),
	placed("My Dinner with Andre", "Two old friends talk through one long evening about how to live.", 1981, "Louis Malle",
		position(45, 5, 50, 90, 30, 55, 55, 100)),
	placed("2001: A Space Odyssey", "Evolution and machine intelligence rendered as pure spectacle.", 1968, "Stanley Kubrick",
		position(70, 10, 20, 30, 25, 10, 45, 0)),
	placed("The Seventh Seal", "A knight confronts mortality with quiet philosophical grace.", 1957, "Ingmar Bergman",
		position(90, 20, 15, 40, 5, 35, 20, 75)),
	placed("Spirited Away", "A girl works her way out of a spirit world bathhouse.", 2001, "Hayao Miyazaki",
		position(35, 60, 70, 0, 70, 55, 80, 35)),
	placed("Parasite", "Class warfare explodes with dark comic energy and precision.", 2019, "Bong Joon-ho",
		position(85, 75, 20, 80, 100, 80, 20, 60)),
	placed("La La Land", "Romance and ambition dance through a modern city.", 2016, "Damien Chazelle",
		position(30, 60, 80, 45, 90, 75, 70, 55)),
	placed("Singin' in the Rain", "Hollywood's jump to sound told as pure musical joy.", 1952, "Stanley Donen",
		position(0, 70, 100, 55, 0, 85, 100, 70)),
	placed("Moonlight", "Three moments in a life rendered with poetic grace.", 2016, "Barry Jenkins",
		position(70, 15, 35, 85, 85, 20, 45, 25)),
}

// Dense returns the dimension-scored catalog used with the eight-axis set.
func Dense() []Film {
	out := make([]Film, len(denseFilms))
	for i, f := range denseFilms {
		out[i] = f
	}
	return out
}
