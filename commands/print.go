package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"designopt/model"
	"designopt/optimizer"
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatVector(v []float64) string {
	s := make([]string, len(v))
	for i, f := range v {
		s[i] = strconv.FormatFloat(f, 'g', 6, 64)
	}
	return strings.Join(s, " ")
}

func printResult(w io.Writer, r model.Result) error {
	if jsonOut {
		return printJSON(w, r)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "objectives\t%s\n", formatVector(r.Objectives))
	fmt.Fprintf(tw, "constraints\t%s\n", formatVector(r.Constraints))
	fmt.Fprintf(tw, "feasible\t%t\n", r.Feasible())
	return tw.Flush()
}

func printFront(w io.Writer, bounds []model.Bound, front optimizer.ParetoSet) error {
	if jsonOut {
		return printJSON(w, front.Points())
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	names := make([]string, len(bounds))
	for i, b := range bounds {
		names[i] = b.Name
	}
	fmt.Fprintf(tw, "#\tobjectives\tconstraints\t%s\n", strings.Join(names, "\t"))
	for i, ind := range front {
		vars := make([]string, len(ind.Variables))
		for j, v := range ind.Variables {
			vars[j] = strconv.FormatFloat(v, 'g', 6, 64)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, formatVector(ind.Objectives), formatVector(ind.Constraints), strings.Join(vars, "\t"))
	}
	return tw.Flush()
}

func printModels(w io.Writer, infos []model.ModelInfo) error {
	if jsonOut {
		return printJSON(w, infos)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "model\tvariables\tobjectives\tconstraints")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", info.Name, len(info.Bounds), info.Objectives, info.Constraints)
	}
	return tw.Flush()
}

func printBounds(w io.Writer, bounds []model.Bound) error {
	if jsonOut {
		return printJSON(w, bounds)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tname\tunit\tlower\tupper")
	for i, b := range bounds {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%g\t%g\n", i, b.Name, b.Unit, b.Lower, b.Upper)
	}
	return tw.Flush()
}
