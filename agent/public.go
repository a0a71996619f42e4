package agent

import (
	"context"
	"fmt"

	"github.com/harrowfield/bushel"
	"github.com/harrowfield/bushel/date"
	"github.com/harrowfield/bushel/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewMarketer creates the expert in charge of reading the farm's sales
// position. Its tools load the dataset from dataDir on every call, so the
// answers follow the files on disk.
func NewMarketer(dataDir string) *Expert {
	lib := []Function{salesReportFunc(dataDir), deliveriesFunc(dataDir), cropYearFunc()}

	return &Expert{
		Name: "Marketer",
		Description: `The Marketer reads the farm's grain marketing position:
		what is sold, contracted, or still open for each crop year and commodity.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a grain marketing advisor for a single farm operation.
			Use the available tools to read the farm's crop year sales reconciliation
			and monthly deliveries before answering. Figures come from the tools, never
			from memory. A crop year runs October 1 through September 30 and is labeled
			by the year of its October 1. Mention any notices the reports carry, the
			farmer needs to know about unmapped commodities or oversold positions.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// yearArg extracts the crop year argument, defaulting to the current one.
func yearArg(args map[string]any) (date.CropYear, error) {
	iyear, ok := args["year"]
	if !ok {
		return date.CurrentCropYear(), nil
	}
	// genai delivers JSON numbers as float64.
	fyear, ok := iyear.(float64)
	if !ok {
		return 0, fmt.Errorf("argument 'year' is not a number as expected but %T", iyear)
	}
	y := date.CropYear(int(fyear))
	if !y.Valid() {
		return 0, fmt.Errorf("argument 'year' %d is not a plausible crop year", int(fyear))
	}
	return y, nil
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func salesReportFunc(dataDir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "SalesReport",
			Description: `SalesReport reconciles one crop year: per commodity, the starting
			bushels and how many are sold, contracted, or open, with their revenue.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year": {
						Type:        genai.TypeInteger,
						Description: "The crop year label, e.g. 2025 for Oct 2025 through Sep 2026. Defaults to the current crop year.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the reconciliation, followed by data-quality notices.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			year, err := yearArg(args)
			if err != nil {
				return errResponse(id, "SalesReport", err)
			}
			ds, err := bushel.LoadDataset(dataDir)
			if err != nil {
				return errResponse(id, "SalesReport", err)
			}
			report, err := ds.Reconcile(bushel.ReportOptions{Years: []date.CropYear{year}})
			if err != nil {
				return errResponse(id, "SalesReport", err)
			}
			return okResponse(id, "SalesReport", renderer.SalesMarkdown(report))
		},
	}
}

func deliveriesFunc(dataDir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "MonthlyDeliveries",
			Description: `MonthlyDeliveries breaks one crop year's settled grain down by
			commodity and delivery month, October through September.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year": {
						Type:        genai.TypeInteger,
						Description: "The crop year label. Defaults to the current crop year.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown breakdown of deliveries per commodity and month.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			year, err := yearArg(args)
			if err != nil {
				return errResponse(id, "MonthlyDeliveries", err)
			}
			ds, err := bushel.LoadDataset(dataDir)
			if err != nil {
				return errResponse(id, "MonthlyDeliveries", err)
			}
			report, err := ds.MonthlyDeliveries(year)
			if err != nil {
				return errResponse(id, "MonthlyDeliveries", err)
			}
			return okResponse(id, "MonthlyDeliveries", renderer.DeliveriesMarkdown(report))
		},
	}
}

func cropYearFunc() *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "CropYearOf",
			Description: "CropYearOf returns the crop year a calendar date belongs to, with its bounds.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "A date in YYYY-MM-DD form. Defaults to today.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The crop year label and its inclusive date range.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			on := date.Today()
			if idate, ok := args["date"]; ok {
				sdate, ok := idate.(string)
				if !ok {
					return errResponse(id, "CropYearOf", fmt.Errorf("argument 'date' is not a string as expected but %T", idate))
				}
				var err error
				on, err = date.Parse(sdate)
				if err != nil {
					return errResponse(id, "CropYearOf", err)
				}
			}
			y := date.CropYearOf(on)
			return okResponse(id, "CropYearOf", fmt.Sprintf("%s is in crop year %s (%s)", on, y, y.Range()))
		},
	}
}
