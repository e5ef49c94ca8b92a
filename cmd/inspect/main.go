// Command inspect loads entity definitions and prints how capabilities
// resolve against every entity type.
//
//	inspect -file defs.yaml -cap Position -cap Drawable
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zeusync/entitytype/internal/core/entity"
	"github.com/zeusync/entitytype/internal/core/kinds"
	"github.com/zeusync/entitytype/internal/core/loader"
	"github.com/zeusync/entitytype/internal/core/observability/log"
	"github.com/zeusync/entitytype/internal/injector"
	"gopkg.in/yaml.v3"
)

type capabilityList []string

func (c *capabilityList) String() string {
	return strings.Join(*c, ",")
}

func (c *capabilityList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var caps capabilityList
	file := fs.String("file", "", "definitions file (.yaml, .yml or .json)")
	level := fs.String("level", "warn", "log level: debug, info, warn, error")
	dump := fs.Bool("dump", false, "print the validated entity types as YAML")
	fs.Var(&caps, "cap", "capability to resolve (repeatable)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *file == "" {
		fmt.Fprintln(stderr, "inspect: -file is required")
		return 2
	}

	engine := injector.InitializeEngine(log.ParseLevel(*level))
	defer func() { _ = engine.Logger.Sync() }()
	logger := engine.Logger.With(log.String("file", *file))
	logger.Debug("inspect starting", log.Bool("dump", *dump), log.Any("capabilities", []string(caps)))

	cfg, err := load(*file)
	if err != nil {
		logger.Error("load definitions", log.Error(err))
		fmt.Fprintln(stderr, "inspect:", err)
		return 1
	}
	if _, err = cfg.Build(engine.Kinds, engine.Entities); err != nil {
		logger.Error("build definitions", log.Error(err))
		fmt.Fprintln(stderr, "inspect:", err)
		return 1
	}
	for _, k := range engine.Kinds.Kinds() {
		logger.Debug("kind registered",
			log.String("kind", k.Name()),
			log.Uint32("id", uint32(k.ID())),
			log.Any("capabilities", k.Capabilities()),
		)
	}
	engine.Entities.ValidateAllLogged()

	types := engine.Entities.All()
	if *dump {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err = enc.Encode(types); err != nil {
			fmt.Fprintln(stderr, "inspect:", err)
			return 1
		}
		_ = enc.Close()
	}

	for _, et := range types {
		printType(stdout, et, caps)
	}
	return 0
}

func load(path string) (*loader.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".json") {
		return loader.LoadJSON(f)
	}
	return loader.LoadYAML(f)
}

func printType(w io.Writer, et *entity.Type, caps []string) {
	names := make([]string, len(et.Components))
	for i, c := range et.Components {
		names[i] = c.KindName
	}
	fmt.Fprintf(w, "#%d %s [%s]\n", et.Index(), et.Name, strings.Join(names, ", "))
	for _, c := range caps {
		fmt.Fprintf(w, "  %s: %s\n", c, et.Accessors(kinds.Capability(c)))
	}
}
