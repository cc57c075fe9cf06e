//
// cheapgo - bitboard chess position analyzer
//
// MIT License
//
// Copyright (c) 2026 cheapgo contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration, read from a toml
// file with fallback to defaults when the file is absent.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/negamaxgo/cheapgo/internal/util"
)

// ConfFile is the path Setup reads from, relative to the working directory.
var ConfFile = "./config.toml"

// Settings is the global configuration, populated by Setup.
var Settings Conf

var initialized = false

// Conf mirrors config.toml's top-level sections.
type Conf struct {
	Log    LogConfig
	Search SearchConfig
}

// LogConfig controls the shared logger level.
type LogConfig struct {
	// Level is an op/go-logging level ordinal: 0=CRITICAL .. 5=DEBUG.
	Level int
}

// SearchConfig controls the negamax search's pluggable aspects.
type SearchConfig struct {
	// MaxPlies bounds the search depth; analyze_position returns a leaf
	// material score once HalfmoveCount reaches the root's count + MaxPlies.
	MaxPlies int
	// UseAlphaBeta selects the AlphaBeta pruning aspect over plain Minimax.
	UseAlphaBeta bool
	// UseTT enables the transposition cache aspect.
	UseTT bool
	// TTSizeMB is the transposition table's memory budget.
	TTSizeMB int
}

func defaults() Conf {
	return Conf{
		Log: LogConfig{Level: 4},
		Search: SearchConfig{
			MaxPlies:     6,
			UseAlphaBeta: true,
			UseTT:        true,
			TTSizeMB:     16,
		},
	}
}

// Setup reads ConfFile once, falling back to defaults for anything the
// file doesn't set or when the file can't be found at all.
func Setup() {
	if initialized {
		return
	}
	Settings = defaults()
	if path, err := util.ResolveFile(ConfFile); err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			log.Println("config file found but could not be parsed, using defaults:", err)
			Settings = defaults()
		}
	}
	initialized = true
}
