/*
 * This file is part of the Mantik Project.
 * Copyright (c) 2020-2021 Mantik UG (Haftungsbeschränkt)
 * Authors: See AUTHORS file
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License version 3.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.
 *
 * Additionally, the following linking exception is granted:
 *
 * If you modify this Program, or any covered work, by linking or
 * combining it with other code, such other code is not for that reason
 * alone subject to any of the requirements of the GNU Affero GPL
 * version 3.
 *
 * You can be released from the requirements of the license by purchasing
 * a commercial license.
 */
package cli

import (
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"idx/ds/element"
	"idx/ds/formats/idx"
	"idx/ds/formats/images"
	"idx/ds/formats/natural"
	"idx/ds/util/serializer"
	"idx/services/idxadapter"
)

// Implements the command line interface for inspecting IDX files

// Return Codes
const RC_INVALID_ARGUMENT = 1
const RC_COULD_NOT_OPEN_FILE = 2
const RC_COULD_NOT_DECODE_FILE = 3
const RC_COULD_NOT_EXPORT = 4
const RC_COULD_NOT_RENDER = 5
const RC_COULD_NOT_LOAD_DATASET = 6

func printErrorAndQuit(code int, format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprint(os.Stderr, "\n")
	os.Exit(code)
}

func printHelp(args []string) {
	fmt.Printf(
		`Usage %s <command> <args>
Commands:
  help        - Show this help
  info        - Print type and shape of an IDX file
  export      - Decode an IDX file and export it as msgpack or JSON
  render      - Render an image tensor of an IDX file as PNG
  dataset     - Load a dataset directory (manifest.yaml) and summarize it
`, args[0])
}

func Start(args []string) {
	infoCommand := flag.NewFlagSet("info", flag.ExitOnError)
	infoGzip := infoCommand.Bool("gzip", false, "Input is gzip compressed")
	infoDump := infoCommand.Int("dump", 0, "Dump the first n elements")

	exportCommand := flag.NewFlagSet("export", flag.ExitOnError)
	exportGzip := exportCommand.Bool("gzip", false, "Input is gzip compressed")
	exportFormat := exportCommand.String("format", "msgpack", "Export format (msgpack or json)")
	exportOut := exportCommand.String("out", "", "Output file, default stdout")

	renderCommand := flag.NewFlagSet("render", flag.ExitOnError)
	renderGzip := renderCommand.Bool("gzip", false, "Input is gzip compressed")
	renderIndex := renderCommand.Int("index", 0, "Image index inside a 3-dimensional tensor")
	renderWidth := renderCommand.Int("width", 0, "Target width, 0 keeps the tensor width")
	renderHeight := renderCommand.Int("height", 0, "Target height, 0 keeps the tensor height")
	renderOut := renderCommand.String("out", "", "Output PNG file")

	datasetCommand := flag.NewFlagSet("dataset", flag.ExitOnError)
	datasetDebug := datasetCommand.Bool("debug", false, "Enable debug logging")

	if len(args) < 2 {
		printHelp(args)
		os.Exit(RC_INVALID_ARGUMENT)
	}

	switch args[1] {
	case "help":
		fallthrough
	case "--help":
		printHelp(args)
	case "info":
		infoCommand.Parse(args[2:])
		runInfo(infoCommand.Args(), *infoGzip, *infoDump)
	case "export":
		exportCommand.Parse(args[2:])
		runExport(exportCommand.Args(), *exportGzip, *exportFormat, *exportOut)
	case "render":
		renderCommand.Parse(args[2:])
		runRender(renderCommand.Args(), *renderGzip, *renderIndex, *renderWidth, *renderHeight, *renderOut)
	case "dataset":
		datasetCommand.Parse(args[2:])
		runDataset(datasetCommand.Args(), *datasetDebug)
	default:
		printHelp(args)
		os.Exit(RC_INVALID_ARGUMENT)
	}
}

func openSource(file string, gzipped bool) io.ReadCloser {
	f, err := os.Open(file)
	if err != nil {
		printErrorAndQuit(RC_COULD_NOT_OPEN_FILE, "Could not open %s: %s", file, err.Error())
	}
	if !gzipped {
		return f
	}
	r, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		printErrorAndQuit(RC_COULD_NOT_OPEN_FILE, "Could not open %s as gzip: %s", file, err.Error())
	}
	return r
}

func decodeError(file string, err error) {
	if idx.IsUnknownTypeCode(err) {
		printErrorAndQuit(RC_COULD_NOT_DECODE_FILE, "%s is no IDX file: %s", file, err.Error())
	}
	if idx.IsTruncated(err) {
		printErrorAndQuit(RC_COULD_NOT_DECODE_FILE, "%s is truncated: %s", file, err.Error())
	}
	printErrorAndQuit(RC_COULD_NOT_DECODE_FILE, "Could not decode %s: %s", file, err.Error())
}

func runInfo(args []string, gzipped bool, dump int) {
	if len(args) != 1 {
		printErrorAndQuit(RC_INVALID_ARGUMENT, "Expected a single file argument")
	}
	file := args[0]
	source := openSource(file, gzipped)
	defer source.Close()
	header, err := idx.ParseHeader(source)
	if err != nil {
		decodeError(file, err)
	}
	fmt.Printf("Type:     %s\n", header.ComponentType.TypeName())
	fmt.Printf("Shape:    %v\n", header.Dimensions)
	fmt.Printf("Elements: %d\n", header.TensorType().PackedElementCount())
	if dump <= 0 {
		return
	}
	tensor, err := idx.DecodeBody(source, header)
	if err != nil {
		decodeError(file, err)
	}
	values := tensor.Values()
	if dump > len(values) {
		dump = len(values)
	}
	formatted := make([]string, dump)
	for i := 0; i < dump; i++ {
		formatted[i] = element.Format(values[i])
	}
	fmt.Printf("Data:     %s\n", strings.Join(formatted, " "))
}

func runExport(args []string, gzipped bool, format string, out string) {
	if len(args) != 1 {
		printErrorAndQuit(RC_INVALID_ARGUMENT, "Expected a single file argument")
	}
	backendType, err := serializer.BackendTypeFromName(format)
	if err != nil {
		printErrorAndQuit(RC_INVALID_ARGUMENT, "%s", err.Error())
	}
	file := args[0]
	source := openSource(file, gzipped)
	defer source.Close()
	header, err := idx.ParseHeader(source)
	if err != nil {
		decodeError(file, err)
	}
	tensor, err := idx.DecodeBody(source, header)
	if err != nil {
		decodeError(file, err)
	}
	var destination io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			printErrorAndQuit(RC_COULD_NOT_EXPORT, "Could not create %s: %s", out, err.Error())
		}
		defer f.Close()
		destination = f
	}
	if err := natural.EncodeBundle(tensor, header.ComponentType, backendType, destination); err != nil {
		printErrorAndQuit(RC_COULD_NOT_EXPORT, "Could not export %s: %s", file, err.Error())
	}
}

func runRender(args []string, gzipped bool, index int, width int, height int, out string) {
	if len(args) != 1 {
		printErrorAndQuit(RC_INVALID_ARGUMENT, "Expected a single file argument")
	}
	if out == "" {
		printErrorAndQuit(RC_INVALID_ARGUMENT, "Expected an output file (-out)")
	}
	file := args[0]
	source := openSource(file, gzipped)
	defer source.Close()
	tensor, err := idx.DecodeStream(source)
	if err != nil {
		decodeError(file, err)
	}
	if len(tensor.Shape()) == 3 {
		tensor, err = tensor.Slice(index)
		if err != nil {
			printErrorAndQuit(RC_COULD_NOT_RENDER, "Could not slice %s: %s", file, err.Error())
		}
	}
	img, err := images.RenderGrayscale(tensor, width, height)
	if err != nil {
		printErrorAndQuit(RC_COULD_NOT_RENDER, "Could not render %s: %s", file, err.Error())
	}
	f, err := os.Create(out)
	if err != nil {
		printErrorAndQuit(RC_COULD_NOT_RENDER, "Could not create %s: %s", out, err.Error())
	}
	defer f.Close()
	if err := images.WritePng(f, img); err != nil {
		printErrorAndQuit(RC_COULD_NOT_RENDER, "Could not write %s: %s", out, err.Error())
	}
}

func runDataset(args []string, debug bool) {
	if len(args) != 1 {
		printErrorAndQuit(RC_INVALID_ARGUMENT, "Expected a single directory argument")
	}
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	dataset, err := idxadapter.LoadDatasetFromDir(args[0])
	if err != nil {
		printErrorAndQuit(RC_COULD_NOT_LOAD_DATASET, "Could not load dataset: %s", err.Error())
	}
	if dataset.Name() != "" {
		fmt.Printf("Dataset: %s\n", dataset.Name())
	}
	for _, entry := range dataset.Entries() {
		fmt.Printf("%s: %s %v\n", entry.Name, entry.ComponentType.TypeName(), entry.Tensor.Shape())
	}
}
