package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fynlo/fynlo-go/api"
	"github.com/fynlo/fynlo-go/api/endpoints"
	gateway "github.com/fynlo/fynlo-go/api/http"
	"github.com/fynlo/fynlo-go/config"
	"github.com/fynlo/fynlo-go/internal"
	"github.com/fynlo/fynlo-go/notify"
	"github.com/fynlo/fynlo-go/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const tokenEnv = "FYNLO_API_TOKEN"

var (
	verbose    bool
	paramFlags []string
	dataFlag   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fynlo",
		Short: "Fynlo platform API client",
		Long:  "A command-line client for the Fynlo restaurant-payments platform API.",
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	callCmd := &cobra.Command{
		Use:   "call <method> <endpoint>",
		Short: "Call a platform API endpoint",
		Args:  cobra.ExactArgs(2),
		RunE:  runCall,
	}
	callCmd.Flags().StringArrayVarP(&paramFlags, "param", "p", nil, "Path parameter as name=value (repeatable)")
	callCmd.Flags().StringVarP(&dataFlag, "data", "d", "", "JSON request body")

	endpointsCmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List the endpoint catalog",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range endpoints.Names() {
				fmt.Printf("%-20s %s\n", name, endpoints.Catalog[name])
			}
		},
	}

	rootCmd.AddCommand(callCmd, endpointsCmd)

	viper.AutomaticEnv()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCall(cmd *cobra.Command, args []string) error {
	internal.InitLogger(verbose)

	cfg := config.NewManager(config.New()).WithEnvironment().Config

	token := cfg.APIToken
	if token == "" {
		token = viper.GetString(tokenEnv)
	}

	caller := gateway.New(cfg, session.NewStaticTokenSource(token), notify.NewLogNotifier())

	template, err := resolveTemplate(args[1])
	if err != nil {
		return err
	}

	params, err := parseParams(paramFlags)
	if err != nil {
		return err
	}

	var body any
	if dataFlag != "" {
		if err := json.Unmarshal([]byte(dataFlag), &body); err != nil {
			return fmt.Errorf("invalid request body: %w", err)
		}
	}

	result, err := dispatch(cmd.Context(), caller, strings.ToUpper(args[0]), template, params, body)
	if err != nil {
		return err
	}

	return printResult(result)
}

func dispatch(ctx context.Context, caller gateway.Caller, method, template string, params endpoints.Params, body any) (api.Result, error) {
	switch method {
	case "GET":
		return caller.Get(ctx, template, params)
	case "POST":
		return caller.Post(ctx, template, params, body)
	case "PUT":
		return caller.Put(ctx, template, params, body)
	case "PATCH":
		return caller.Patch(ctx, template, params, body)
	case "DELETE":
		return caller.Delete(ctx, template, params)
	default:
		return api.Result{}, fmt.Errorf("unsupported method %q", method)
	}
}

// resolveTemplate accepts either a logical catalog name or a raw template
// path starting with /.
func resolveTemplate(name string) (string, error) {
	if strings.HasPrefix(name, "/") {
		return name, nil
	}
	return endpoints.Lookup(name)
}

func parseParams(flags []string) (endpoints.Params, error) {
	if len(flags) == 0 {
		return nil, nil
	}

	params := make(endpoints.Params, len(flags))
	for _, flag := range flags {
		name, value, found := strings.Cut(flag, "=")
		if !found || name == "" {
			return nil, errors.New("parameters must be given as name=value")
		}
		params[name] = value
	}
	return params, nil
}

func printResult(result api.Result) error {
	switch data := result.Data.(type) {
	case json.RawMessage:
		var pretty map[string]any
		if err := json.Unmarshal(data, &pretty); err != nil {
			// arrays and scalars print as-is
			fmt.Println(string(data))
			return nil
		}
		out, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case string:
		fmt.Println(data)
	}
	return nil
}
