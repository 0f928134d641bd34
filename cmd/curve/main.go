package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/milk9111/eliko/levels"
)

func main() {
	script := flag.String("script", levels.DefaultCurveScript, "curve script under levels/ (empty for the builtin curve)")
	stages := flag.Int("stages", 20, "number of stages to print")
	flag.Parse()

	var curve levels.Curve = levels.Builtin
	if *script != "" {
		c, err := levels.LoadScriptCurve(*script)
		if err != nil {
			log.Fatalf("curve: %v", err)
		}
		curve = c
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "stage\tspawn_every\tenemy_hp\tspeed\tboss_hp")
	for s := 1; s <= max(1, *stages); s++ {
		l := curve.Level(s)
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.2f\t%d\n", l.Stage, l.SpawnEvery, l.EnemyHP, l.Speed, l.BossHP)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
}
