package parser

import "git.lost.host/meutraa/kson/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
}
