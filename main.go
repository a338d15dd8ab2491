package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-ltc-fit/pkg/brdf"
	"github.com/df07/go-ltc-fit/pkg/export"
	"github.com/df07/go-ltc-fit/pkg/fit"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to a YAML fit configuration (optional)")
	brdfName := flag.String("brdf", "ggx", "BRDF to fit: 'ggx', 'beckmann' or 'disney'")
	outputDir := flag.String("output", "output", "Output directory for the exported tables")
	method := flag.String("method", "", "Minimizer override: 'simplex' or 'gonum'")
	quiet := flag.Bool("quiet", false, "Suppress per-cell progress output")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("LTC Table Fitter")
		fmt.Println("Usage: ltcfit [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Fits Linearly Transformed Cosine lobes to the selected BRDF over")
		fmt.Println("an (angle, roughness) grid and exports the table as MATLAB, C,")
		fmt.Println("JS, DDS and PNG files in the output directory.")
		return
	}

	if err := run(*configPath, *brdfName, *outputDir, *method, *quiet); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, brdfName, outputDir, method string, quiet bool) error {
	config := fit.DefaultConfig()
	if configPath != "" {
		loaded, err := fit.LoadConfig(configPath)
		if err != nil {
			return err
		}
		config = loaded
	}
	if method != "" {
		config.Method = method
	}

	model, err := brdf.ByName(brdfName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	fmt.Printf("Fitting %s with N=%d, NSamples=%d, method=%s...\n",
		model.Name(), config.N, config.NSamples, config.Method)

	fitter := fit.NewFitter(model, config)
	if !quiet {
		fitter.Progress = os.Stdout
	}

	startTime := time.Now()
	table := fitter.FitTable()
	fmt.Printf("Fit completed in %v\n", time.Since(startTime))

	packed := fit.Pack(table)

	// export to MATLAB, C, JS, DDS and a quick-look PNG
	prefix := "ltc_" + model.Name()
	outputs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{prefix + ".m", func(w io.Writer) error { return export.WriteMatlab(w, table) }},
		{prefix + ".h", func(w io.Writer) error { return export.WriteC(w, table) }},
		{prefix + ".js", func(w io.Writer) error { return export.WriteJS(w, packed) }},
		{prefix + ".png", func(w io.Writer) error { return export.WritePNG(w, packed) }},
	}
	for _, output := range outputs {
		if err := writeFile(filepath.Join(outputDir, output.name), output.write); err != nil {
			return err
		}
	}

	if err := writeDDSFiles(outputDir, prefix, packed); err != nil {
		return err
	}

	fmt.Printf("Tables saved to %s\n", outputDir)
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := write(file); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeDDSFiles(outputDir, prefix string, packed *fit.PackedTable) error {
	tex1Path := filepath.Join(outputDir, prefix+"_1.dds")
	tex2Path := filepath.Join(outputDir, prefix+"_2.dds")

	tex1, err := os.Create(tex1Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tex1Path, err)
	}
	defer tex1.Close()

	tex2, err := os.Create(tex2Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tex2Path, err)
	}
	defer tex2.Close()

	if err := export.WriteDDS(tex1, tex2, packed); err != nil {
		return fmt.Errorf("writing DDS textures: %w", err)
	}
	return nil
}
