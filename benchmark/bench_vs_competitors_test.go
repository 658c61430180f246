package benchmark_test

import (
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-getopt/getopt"
)

// Benchmark flat flag parsing: one bool, one int, one string plus a
// free-standing argument. Each library re-registers its flags per iteration
// so setup cost is measured the same way everywhere.

var flatArgs = []string{"--name", "svc", "--port", "9000", "-v", "file.txt"}

func BenchmarkFlatFlags_GoGetopt(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := getopt.New()
		_ = p.String("-n,--name", "")
		_ = p.Int("-p,--port", 8080)
		_ = p.Bool("-v,--verbose", false)
		p.SetArgs(flatArgs, false)
		// AsIs accepts the "--flag value" form the other libraries use.
		if _, err := p.Parse(getopt.AsIs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlatFlags_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		_ = fs.StringP("name", "n", "", "Service name")
		_ = fs.IntP("port", "p", 8080, "Server port")
		_ = fs.BoolP("verbose", "v", false, "Verbose output")
		if err := fs.Parse(flatArgs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlatFlags_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().StringP("name", "n", "", "Service name")
		rootCmd.Flags().IntP("port", "p", 8080, "Server port")
		rootCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		rootCmd.SetArgs(flatArgs)
		rootCmd.SetOut(io.Discard)
		_ = rootCmd.Execute()
	}
}

func BenchmarkFlatFlags_Urfave(b *testing.B) {
	args := append([]string{"bench"}, flatArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Service name"},
				&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark clustered short flags (-abc): go-getopt expands them through a
// pooled private buffer, pflag handles them natively.

var clusterArgs = []string{"-abc", "file.txt"}

func BenchmarkClusteredFlags_GoGetopt(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p := getopt.New()
		_ = p.Bool("-a", false)
		_ = p.Bool("-b", false)
		_ = p.Bool("-c", false)
		p.SetArgs(clusterArgs, false)
		if _, err := p.Parse(getopt.Strict); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClusteredFlags_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		_ = fs.BoolP("aflag", "a", false, "A")
		_ = fs.BoolP("bflag", "b", false, "B")
		_ = fs.BoolP("cflag", "c", false, "C")
		if err := fs.Parse(clusterArgs); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark a steady-state parser: registration once, repeated Parse calls.
// This is the reuse pattern the pooled expansion buffer targets.

func BenchmarkReusedParser_GoGetopt(b *testing.B) {
	p := getopt.New()
	_ = p.Bool("-a", false)
	_ = p.Bool("-b", false)
	_ = p.Bool("-c", false)
	_ = p.Int("-n,--count", 0)

	args := []string{"-abc", "-n", "5"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p.SetArgs(args, false)
		if _, err := p.Parse(getopt.Strict); err != nil {
			b.Fatal(err)
		}
	}
}
