package pkg

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// ptMagnitudes traduz as faixas do humanize para o estilo "há 2 horas".
var ptMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "agora", DivBy: time.Second},
	{D: 2 * time.Second, Format: "há 1 segundo", DivBy: 1},
	{D: time.Minute, Format: "há %d segundos", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "há 1 minuto", DivBy: 1},
	{D: time.Hour, Format: "há %d minutos", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "há 1 hora", DivBy: 1},
	{D: humanize.Day, Format: "há %d horas", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "há 1 dia", DivBy: 1},
	{D: humanize.Week, Format: "há %d dias", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "há 1 semana", DivBy: 1},
	{D: humanize.Month, Format: "há %d semanas", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "há 1 mês", DivBy: 1},
	{D: humanize.Year, Format: "há %d meses", DivBy: humanize.Month},
	{D: 2 * humanize.Year, Format: "há 1 ano", DivBy: 1},
	{D: math.MaxInt64, Format: "há %d anos", DivBy: humanize.Year},
}

// RelativeTime formata um timestamp no estilo "há 3 horas", usado nas
// listas recentes do dashboard.
func RelativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.CustomRelTime(t, time.Now(), "", "", ptMagnitudes)
}
