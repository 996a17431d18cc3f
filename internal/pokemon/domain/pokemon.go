package domain

import "time"

type Pokemon struct {
	ID        int
	Name      string
	BirthDate time.Time
}

type Review struct {
	ID        int
	Title     string
	Text      string
	Rating    int
	PokemonID int
}
