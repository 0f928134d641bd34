package main

import (
	"strings"

	"github.com/milk9111/eliko/ecs/system"
)

// Lang is a display language. It never reaches the simulation.
type Lang string

const (
	LangEN Lang = "en"
	LangES Lang = "es"
)

var langs = []Lang{LangEN, LangES}

func ParseLang(s string) Lang {
	l := Lang(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range langs {
		if l == known {
			return l
		}
	}
	return LangEN
}

// Next cycles to the following language.
func (l Lang) Next() Lang {
	for i, known := range langs {
		if l == known {
			return langs[(i+1)%len(langs)]
		}
	}
	return LangEN
}

// Strings is every piece of host text in one language.
type Strings struct {
	HUD system.Labels

	Resume    string
	Mute      string
	Unmute    string
	Restart   string
	Language  string
	CopyScore string
	Copied    string
	// Summary takes score, enemies defeated and boosts collected.
	Summary string
}

var strs = map[Lang]Strings{
	LangEN: {
		HUD:       system.DefaultLabels(),
		Resume:    "Resume",
		Mute:      "Mute",
		Unmute:    "Unmute",
		Restart:   "Restart",
		Language:  "Español",
		CopyScore: "Copy score",
		Copied:    "Copied!",
		Summary:   "Score %d   Enemies defeated %d   Boosts collected %d",
	},
	LangES: {
		HUD: system.Labels{
			Score:    "Puntos",
			Stage:    "Fase",
			Boss:     "JEFE",
			Weapon:   "Arma",
			Level:    "Nv",
			Paused:   "Pausa",
			GameOver: "Fin del juego",
			Restart:  "Enter para reiniciar",
			Help: []string{
				"WASD / flechas: nadar",
				"Ratón o Espacio: disparar",
				"Táctil: stick izquierdo mueve, derecho apunta",
				"P pausa  M silencio  L idioma",
			},
		},
		Resume:    "Continuar",
		Mute:      "Silenciar",
		Unmute:    "Activar sonido",
		Restart:   "Reiniciar",
		Language:  "English",
		CopyScore: "Copiar puntos",
		Copied:    "¡Copiado!",
		Summary:   "Puntos %d   Enemigos vencidos %d   Mejoras recogidas %d",
	},
}

func Lookup(l Lang) Strings {
	if s, ok := strs[l]; ok {
		return s
	}
	return strs[LangEN]
}
