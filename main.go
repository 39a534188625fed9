package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"fxsynth/config"
	"fxsynth/internal/generator"
	"fxsynth/internal/model"
	"fxsynth/internal/writer"
	"fxsynth/logger"
)

const dateLayout = "2006.01.02"

// options are the fully parsed and merged inputs of one run.
type options struct {
	startDate  time.Time
	endDate    time.Time
	startPrice float64
	endPrice   float64
	digits     int
	spread     int
	density    int
	pattern    model.Pattern
	volatility float64
	outputFile string
	format     string
	verbose    bool
}

// fatal reports a validation failure on the diagnostic stream and
// terminates before anything is written to the output sink.
func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "[ERROR] %s\n", msg)
	os.Exit(1)
}

// validate enforces the input ranges every model assumes. The spread
// ceiling keeps the volume synthesizer's modulus positive.
func validate(o options) error {
	if o.endDate.Before(o.startDate) {
		return fmt.Errorf("Ending date precedes starting date!")
	}
	if o.digits <= 0 {
		return fmt.Errorf("Digits must be larger than zero!")
	}
	if o.startPrice <= 0 || o.endPrice <= 0 {
		return fmt.Errorf("Price must be larger than zero!")
	}
	if o.spread < 0 {
		return fmt.Errorf("Spread must be larger or equal to zero!")
	}
	if o.spread >= 1000 {
		return fmt.Errorf("Spread must be smaller than 1000 points!")
	}
	if o.density <= 0 {
		return fmt.Errorf("Density must be larger than zero!")
	}
	if o.volatility <= 0 {
		return fmt.Errorf("Volatility must be larger than zero!")
	}
	return nil
}

func main() {
	log := logger.GetLogger()

	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Error loading .env file")
	}

	var o options
	var configPath string
	pflag.IntVarP(&o.digits, "digits", "D", 5, "Decimal digits of prices.")
	pflag.IntVarP(&o.spread, "spread", "s", 10, "Spread between prices in points.")
	pflag.IntVarP(&o.density, "density", "d", 1, "Data points per minute in generated data.")
	patternName := pflag.StringP("pattern", "p", "none", "Modeling pattern: none, wave, curve, zigzag or random.")
	pflag.Float64VarP(&o.volatility, "volatility", "V", 1.0, "Volatility factor (higher values lead to higher volatility in price values).")
	pflag.StringVarP(&o.outputFile, "outputFile", "o", "", "Write generated data to a file or s3://bucket/key instead of standard output.")
	pflag.StringVar(&o.format, "format", "", "Output format: csv or parquet.")
	pflag.BoolVarP(&o.verbose, "verbose", "v", false, "Sets the verbosity logging level.")
	pflag.StringVar(&configPath, "config", "", "Path to an optional configuration file.")
	pflag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(configPath); err != nil {
			fatal(err.Error())
		}
	}
	applyConfigDefaults(&o, patternName, cfg)

	level := cfg.Logging.Level
	if o.verbose {
		level = "info"
	}
	if err := log.Configure(level, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.MaxAge); err != nil {
		fatal(err.Error())
	}

	args := pflag.Args()
	if len(args) != 4 {
		fatal("Expected arguments: startDate endDate startPrice endPrice")
	}

	var err error
	if o.startDate, err = time.Parse(dateLayout, args[0]); err != nil {
		fatal("Bad date format!")
	}
	if o.endDate, err = time.Parse(dateLayout, args[1]); err != nil {
		fatal("Bad date format!")
	}
	if o.startPrice, err = strconv.ParseFloat(args[2], 64); err != nil {
		fatal("Bad price format!")
	}
	if o.endPrice, err = strconv.ParseFloat(args[3], 64); err != nil {
		fatal("Bad price format!")
	}
	if o.pattern, err = model.ParsePattern(*patternName); err != nil {
		fatal(err.Error())
	}
	if o.format != "csv" && o.format != "parquet" {
		fatal(fmt.Sprintf("Unknown output format '%s'!", o.format))
	}
	if err = validate(o); err != nil {
		fatal(err.Error())
	}

	spread := float64(o.spread) / 1e5
	log.WithComponent("cli").WithFields(logger.Fields{"spread": spread}).Info("spread resolved")

	params := generator.Params{
		StartDate:  o.startDate,
		EndDate:    o.endDate,
		StartPrice: o.startPrice,
		EndPrice:   o.endPrice,
		Spread:     spread,
		DeltaTime:  generator.Interval(o.density),
		Volatility: o.volatility,
	}

	log.WithComponent("cli").WithFields(logger.Fields{"pattern": o.pattern}).Info("pattern selected")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	ticks := generator.Generate(o.pattern, params, rng)

	series := model.Series{
		RunID:     uuid.NewString(),
		Pattern:   o.pattern,
		StartDate: o.startDate,
		EndDate:   o.endDate,
		Ticks:     ticks,
	}

	log.WithComponent("cli").WithFields(logger.Fields{
		"run_id": series.RunID,
		"rows":   len(ticks),
	}).Info("rows generated")

	if err := emit(series, o, cfg); err != nil {
		log.WithComponent("cli").WithError(err).Error("failed to write output")
		os.Exit(1)
	}
}

// applyConfigDefaults lets a configuration file supply defaults for any
// generator option the command line leaves untouched.
func applyConfigDefaults(o *options, patternName *string, cfg *config.Config) {
	flags := pflag.CommandLine
	if !flags.Changed("digits") {
		o.digits = cfg.Generator.Digits
	}
	if !flags.Changed("spread") {
		o.spread = cfg.Generator.Spread
	}
	if !flags.Changed("density") {
		o.density = cfg.Generator.Density
	}
	if !flags.Changed("pattern") {
		*patternName = cfg.Generator.Pattern
	}
	if !flags.Changed("volatility") {
		o.volatility = cfg.Generator.Volatility
	}
	if !flags.Changed("format") {
		o.format = cfg.Writer.Format
	}
}

// emit serializes the series and delivers it to the selected sink:
// standard output, a local file or an S3 object.
func emit(series model.Series, o options, cfg *config.Config) error {
	log := logger.GetLogger()

	serialize := func(out io.Writer) error {
		if o.format == "parquet" {
			return writer.NewParquetWriter(cfg.Writer.Formats.Parquet.Compression).Write(out, series.Ticks)
		}
		return writer.NewCSVWriter(o.digits).Write(out, series.Ticks)
	}

	if o.outputFile == "" {
		return serialize(os.Stdout)
	}

	if bucket, key, ok := writer.ParseS3URL(o.outputFile); ok {
		var buf bytes.Buffer
		if err := serialize(&buf); err != nil {
			return err
		}
		ctx := context.Background()
		sink, err := writer.NewS3Sink(ctx, cfg.Storage.S3)
		if err != nil {
			return err
		}
		return sink.Upload(ctx, bucket, key, buf.Bytes(), map[string]string{
			"run-id":          series.RunID,
			"pattern":         string(series.Pattern),
			"fxsynth-version": cfg.Fxsynth.Version,
		})
	}

	log.WithComponent("cli").WithFields(logger.Fields{"output_file": o.outputFile}).Info("writing output file")
	file, err := os.Create(o.outputFile)
	if err != nil {
		return err
	}
	if err := serialize(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	if cfg.Writer.Manifest {
		info, err := os.Stat(o.outputFile)
		if err != nil {
			return err
		}
		return writer.WriteManifest(writer.NewManifest(series, o.outputFile, o.format, info.Size()))
	}
	return nil
}
