// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/navwar/gobucket/pkg/folder"
	"github.com/navwar/gobucket/pkg/log"
	"github.com/navwar/gobucket/pkg/miniostore"
	"github.com/navwar/gobucket/pkg/s3store"
	"github.com/navwar/gobucket/pkg/store"
	"github.com/navwar/gobucket/pkg/ts"
)

const (
	GoBucketVersion = "0.0.1"
)

// AWS Flags
const (
	// Profile
	flagAWSProfile = "aws-profile"
	flagAWSRegion  = "aws-region"
	// Credentials
	flagAWSAccessKeyID     = "aws-access-key-id"
	flagAWSSecretAccessKey = "aws-secret-access-key"
	flagAWSSessionToken    = "aws-session-token"
	// Client
	flagAWSRetryMaxAttempts = "aws-retry-max-attempts"
	// TLS
	flagAWSInsecureSkipVerify = "aws-insecure-skip-verify"
	// Miscellaneous
	flagBucketKeyEnabled = "aws-bucket-key-enabled"
	flagACL              = "aws-acl"
)

// Bucket Flags
const (
	flagBackend        = "backend"
	flagS3Bucket       = "s3-bucket"
	flagS3Endpoint     = "s3-endpoint"
	flagS3UsePathStyle = "s3-use-path-style"
)

// Backends
const (
	BackendS3    = "s3"
	BackendMinio = "minio"
)

// Debug Flag
const (
	flagDebug = "debug"
)

// Transfer Flags
const (
	flagThreads  = "threads"
	flagMaxKeys  = "max-keys"
	flagMaxPages = "max-pages"
	flagTimeout  = "timeout"
)

// Transfer Defaults
const (
	DefaultThreads  = folder.DefaultMaxThreads
	DefaultMaxKeys  = folder.DefaultMaxKeys
	DefaultMaxPages = -1

	MaximumMaxKeys = 1000
)

// Save Flags
const (
	flagFile = "file"
)

// Log Flags
const (
	flagLogPath            = "log-path"
	flagLogPerm            = "log-perm"
	flagLogTimeLayout      = "log-time-layout"
	flagLogTimeZone        = "log-time-zone"
	flagLogClientSigning   = "log-client-signing"
	flagLogClientRequests  = "log-client-requests"
	flagLogClientResponses = "log-client-responses"
	flagLogClientRetries   = "log-client-retries"
)

func initAWSFlags(flag *pflag.FlagSet) {
	// Profile
	flag.String(flagAWSProfile, "default", "AWS Profile")
	flag.String(flagAWSRegion, "", "AWS Region")
	// Credentials
	flag.String(flagAWSAccessKeyID, "", "AWS Access Key ID")
	flag.String(flagAWSSecretAccessKey, "", "AWS Secret Access Key")
	flag.String(flagAWSSessionToken, "", "AWS Session Token")
	// Client
	flag.Int(flagAWSRetryMaxAttempts, 5, "the maximum number attempts an AWS API client will call an operation that fails with a retryable error.")
	// TLS
	flag.Bool(flagAWSInsecureSkipVerify, false, "Skip verification of AWS TLS certificate")
	// Miscellaneous
	flag.Bool(flagBucketKeyEnabled, false, "bucket key enabled")
	flag.String(flagACL, "", "canned ACL for saved and copied objects, e.g., private or bucket-owner-full-control")
}

func initBucketFlags(flag *pflag.FlagSet) {
	flag.String(flagBackend, BackendS3, fmt.Sprintf("object storage client.  Either %s or %s.", BackendS3, BackendMinio))
	flag.StringP(flagS3Bucket, "b", "", "name of the bucket")
	flag.String(flagS3Endpoint, "", "S3 Endpoint URL")
	flag.Bool(flagS3UsePathStyle, false, "Use path-style addressing (default is to use virtual-host-style addressing)")
}

func initDebugFlags(flag *pflag.FlagSet) {
	flag.BoolP(flagDebug, "d", false, "print debug messages")
}

func initTransferFlags(flag *pflag.FlagSet) {
	flag.Int(flagThreads, DefaultThreads, "maximum number of parallel transfers for each page.  Use -1 for the number of CPUs.")
	flag.Int(flagMaxKeys, DefaultMaxKeys, fmt.Sprintf("maximum number of keys for each page returned by the listing (maximum %d)", MaximumMaxKeys))
	flag.Int(flagMaxPages, DefaultMaxPages, "maximum number of pages to list.  Use -1 for no limit.")
	flag.Duration(flagTimeout, 0, "timeout for the whole operation.  Use 0 for no timeout.")
}

func initSaveFlags(flag *pflag.FlagSet) {
	flag.StringP(flagFile, "f", "", "read content from this local file, or \"-\" for stdin")
}

func initLogFlags(flag *pflag.FlagSet) {
	flag.String(flagLogPath, "-", "path to the log output.  Defaults to the operating system's stdout device.")
	flag.String(flagLogPerm, "0600", "file permissions for log output file as unix file mode.")
	flag.String(flagLogTimeLayout, "RFC3339", "the layout to use for log timestamps.  Use go layout format, or the name of a layout.  Use gobucket layouts to show all named layouts.")
	flag.String(flagLogTimeZone, "UTC", "the timezone to use for log timestamps")
	flag.Bool(flagLogClientSigning, false, "log AWS client signature requests")
	flag.Bool(flagLogClientRequests, false, "log AWS client requests")
	flag.Bool(flagLogClientResponses, false, "log AWS client responses")
	flag.Bool(flagLogClientRetries, false, "log AWS client retries")
}

func initBucketCommandFlags(flag *pflag.FlagSet) {
	initDebugFlags(flag)
	initAWSFlags(flag)
	initBucketFlags(flag)
	initLogFlags(flag)
}

func initTransferCommandFlags(flag *pflag.FlagSet) {
	initBucketCommandFlags(flag)
	initTransferFlags(flag)
}

func initSaveCommandFlags(flag *pflag.FlagSet) {
	initBucketCommandFlags(flag)
	initSaveFlags(flag)
	flag.Duration(flagTimeout, 0, "timeout for the whole operation.  Use 0 for no timeout.")
}

func initViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return v, fmt.Errorf("error binding flag set to viper: %w", err)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // set environment variables to overwrite config
	return v, nil
}

func checkBucketConfig(v *viper.Viper) error {
	if len(v.GetString(flagS3Bucket)) == 0 {
		return errors.New("bucket is missing")
	}
	switch backend := v.GetString(flagBackend); backend {
	case BackendS3, BackendMinio:
	default:
		return fmt.Errorf("unknown backend %q, expecting %s or %s", backend, BackendS3, BackendMinio)
	}
	if acl := v.GetString(flagACL); len(acl) > 0 {
		valid := false
		for _, value := range types.ObjectCannedACL("").Values() {
			if string(value) == acl {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown canned ACL %q", acl)
		}
	}
	return nil
}

func checkLogConfig(v *viper.Viper) error {
	logPath := v.GetString(flagLogPath)
	if len(logPath) == 0 {
		return fmt.Errorf("log path is missing")
	}
	logPerm := v.GetString(flagLogPerm)
	if len(logPerm) == 0 {
		return fmt.Errorf("log perm is missing")
	}
	_, err := strconv.ParseUint(logPerm, 8, 32)
	if err != nil {
		return fmt.Errorf("invalid format for log perm: %s", logPerm)
	}
	if _, err := ts.ParseLocation(v.GetString(flagLogTimeZone)); err != nil {
		return fmt.Errorf("invalid log time zone: %w", err)
	}
	return nil
}

func checkTransferConfig(v *viper.Viper) error {
	if threads := v.GetInt(flagThreads); threads == 0 || threads < -1 {
		return fmt.Errorf("threads value %d is invalid, expecting a positive number or -1", threads)
	}
	if maxKeys := v.GetInt(flagMaxKeys); maxKeys < 1 || maxKeys > MaximumMaxKeys {
		return fmt.Errorf("max keys value %d is invalid, expecting a value between 1 and %d", maxKeys, MaximumMaxKeys)
	}
	if maxPages := v.GetInt(flagMaxPages); maxPages == 0 || maxPages < -1 {
		return fmt.Errorf("max pages value %d is invalid, expecting a positive number or -1", maxPages)
	}
	if timeout := v.GetDuration(flagTimeout); timeout < 0 {
		return fmt.Errorf("timeout %q is invalid, expecting a duration greater than or equal to zero", timeout)
	}
	return nil
}

func checkCommonConfig(v *viper.Viper) error {
	if err := checkBucketConfig(v); err != nil {
		return fmt.Errorf("error with bucket configuration: %w", err)
	}
	if err := checkLogConfig(v); err != nil {
		return fmt.Errorf("error with log configuration: %w", err)
	}
	return nil
}

func checkFetchConfig(v *viper.Viper, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expecting 2 positional arguments for prefix and directory, but found %d arguments", len(args))
	}
	if len(args[1]) == 0 {
		return errors.New("directory is missing")
	}
	if err := checkCommonConfig(v); err != nil {
		return err
	}
	return checkTransferConfig(v)
}

func checkCopyConfig(v *viper.Viper, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expecting 2 positional arguments for source and destination, but found %d arguments", len(args))
	}
	// check that source and destination must be different
	if args[0] == args[1] {
		return fmt.Errorf("source and destination must be different: %q", args[0])
	}
	if strings.HasPrefix(args[1], args[0]) {
		return fmt.Errorf("destination %q cannot be within source %q", args[1], args[0])
	}
	if err := checkCommonConfig(v); err != nil {
		return err
	}
	return checkTransferConfig(v)
}

func checkSaveConfig(v *viper.Viper, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("expecting 2 or 3 positional arguments for prefix, path, and content, but found %d arguments", len(args))
	}
	if len(args) == 3 && len(v.GetString(flagFile)) > 0 {
		return errors.New("content cannot be given as both an argument and a file")
	}
	if timeout := v.GetDuration(flagTimeout); timeout < 0 {
		return fmt.Errorf("timeout %q is invalid, expecting a duration greater than or equal to zero", timeout)
	}
	return checkCommonConfig(v)
}

func initLogger(v *viper.Viper) (*log.SimpleLogger, error) {
	location, err := ts.ParseLocation(v.GetString(flagLogTimeZone))
	if err != nil {
		return nil, fmt.Errorf("error parsing log time zone: %w", err)
	}

	input := &log.SimpleLoggerInput{
		TimeLayout: ts.ParseLayout(v.GetString(flagLogTimeLayout)),
		Location:   location,
	}

	path := v.GetString(flagLogPath)

	if path == os.DevNull {
		input.Writer = io.Discard
		return log.NewSimpleLoggerWithInput(input), nil
	}

	if path == "-" {
		input.Writer = os.Stdout
		return log.NewSimpleLoggerWithInput(input), nil
	}

	fileMode := os.FileMode(0600)

	if perm := v.GetString(flagLogPerm); len(perm) > 0 {
		fm, err := strconv.ParseUint(perm, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("error parsing file permissions for log file from %q", perm)
		}
		fileMode = os.FileMode(fm)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, fmt.Errorf("error opening log file %q: %w", path, err)
	}

	input.Writer = f
	return log.NewSimpleLoggerWithInput(input), nil
}

func initStore(ctx context.Context, v *viper.Viper, logger *log.SimpleLogger) (store.ObjectStore, error) {
	bucket := v.GetString(flagS3Bucket)
	endpoint := v.GetString(flagS3Endpoint)
	region := v.GetString(flagAWSRegion)

	if v.GetString(flagBackend) == BackendMinio {
		client, err := miniostore.NewClient(&miniostore.ClientInput{
			Endpoint:        endpoint,
			Region:          region,
			UsePathStyle:    v.GetBool(flagS3UsePathStyle),
			AccessKeyID:     v.GetString(flagAWSAccessKeyID),
			SecretAccessKey: v.GetString(flagAWSSecretAccessKey),
			SessionToken:    v.GetString(flagAWSSessionToken),
		})
		if err != nil {
			return nil, err
		}
		return miniostore.NewMinioStore(client, bucket), nil
	}

	client, err := s3store.NewClient(ctx, &s3store.ClientInput{
		Profile: v.GetString(flagAWSProfile),
		Region:  region,
		// AWS Client
		Endpoint:           endpoint,
		InsecureSkipVerify: v.GetBool(flagAWSInsecureSkipVerify),
		RetryMaxAttempts:   v.GetInt(flagAWSRetryMaxAttempts),
		UsePathStyle:       v.GetBool(flagS3UsePathStyle),
		// AWS Credentials
		AccessKeyID:     v.GetString(flagAWSAccessKeyID),
		SecretAccessKey: v.GetString(flagAWSSecretAccessKey),
		SessionToken:    v.GetString(flagAWSSessionToken),
		// Client Log Mode
		Logger:             log.NewClientLogger(logger),
		LogClientSigning:   v.GetBool(flagLogClientSigning),
		LogClientRetries:   v.GetBool(flagLogClientRetries),
		LogClientRequests:  v.GetBool(flagLogClientRequests),
		LogClientResponses: v.GetBool(flagLogClientResponses),
	})
	if err != nil {
		return nil, err
	}

	return s3store.NewS3Store(&s3store.S3StoreInput{
		Client:           client,
		Bucket:           bucket,
		ACL:              types.ObjectCannedACL(v.GetString(flagACL)),
		BucketKeyEnabled: v.GetBool(flagBucketKeyEnabled),
	}), nil
}

// initCommand loads the configuration, logger, and folder client shared by the bucket commands.
func initCommand(cmd *cobra.Command, args []string, check func(v *viper.Viper, args []string) error) (*viper.Viper, *log.SimpleLogger, *folder.Client, error) {
	v, err := initViper(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if errConfig := check(v, args); errConfig != nil {
		return nil, nil, nil, errConfig
	}

	logger, err := initLogger(v)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error initializing logger: %w", err)
	}

	if v.GetBool(flagDebug) {
		fields := map[string]interface{}{
			"bucket":  v.GetString(flagS3Bucket),
			"backend": v.GetString(flagBackend),
		}
		if endpoint := v.GetString(flagS3Endpoint); len(endpoint) > 0 {
			fields["endpoint"] = endpoint
		}
		_ = logger.Log("Creating object store", fields)
	}

	s, err := initStore(cmd.Context(), v, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error initializing object store: %w", err)
	}

	var folderLogger folder.Logger
	if v.GetBool(flagDebug) {
		folderLogger = logger
	}

	client := folder.NewClient(&folder.ClientInput{
		Store:      s,
		Fs:         afero.NewOsFs(),
		Logger:     folderLogger,
		MaxThreads: v.GetInt(flagThreads),
		MaxKeys:    int32(v.GetInt(flagMaxKeys)),
		MaxPages:   v.GetInt(flagMaxPages),
	})

	return v, logger, client, nil
}

func withTimeout(ctx context.Context, v *viper.Viper) (context.Context, context.CancelFunc) {
	if timeout := v.GetDuration(flagTimeout); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

// readContent returns the content to save from the positional argument, a local file, or stdin.
func readContent(args []string, file string, stdin io.Reader) (string, error) {
	if len(args) == 3 {
		return args[2], nil
	}
	if len(file) > 0 && file != "-" {
		data, err := afero.ReadFile(afero.NewOsFs(), file)
		if err != nil {
			return "", fmt.Errorf("error reading content from file %q: %w", file, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("error reading content from stdin: %w", err)
	}
	return string(data), nil
}

func main() {
	rootCommand := &cobra.Command{
		Use:                   `gobucket [flags]`,
		DisableFlagsInUseLine: true,
		Short: strings.Join([]string{
			"gobucket is a simple command line program for moving folders of objects in a single bucket.",
			"Folders are key prefixes, such as \"data/2024/\".",
			"gobucket fetch downloads a folder, gobucket copy copies a folder, and gobucket save uploads one object.",
		}, "\n"),
	}

	layoutsCommand := &cobra.Command{
		Use:                   `layouts`,
		DisableFlagsInUseLine: true,
		Short:                 "show supported timestamp layouts",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(ts.NamedLayouts))
			for name := range ts.NamedLayouts {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%s: %s\n", name, ts.NamedLayouts[name])
			}
			return nil
		},
	}

	fetchCommand := &cobra.Command{
		Use:                   "fetch PREFIX DIRECTORY",
		DisableFlagsInUseLine: true,
		Short:                 "fetch",
		Long:                  "download every object under the prefix into the local directory",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, logger, client, err := initCommand(cmd, args, checkFetchConfig)
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd.Context(), v)
			defer cancel()

			prefix := args[0]

			directory, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("error resolving directory %q: %w", args[1], err)
			}

			start := time.Now()

			result, err := client.FetchFolder(ctx, prefix, directory)
			if err != nil {
				_ = logger.Log("Error fetching folder", result.Fields(), map[string]interface{}{
					"err": err.Error(),
				})
				os.Exit(1)
			}

			_ = logger.Log("Done fetching folder", result.Fields(), map[string]interface{}{
				"elapsed": time.Since(start).String(),
			})

			return nil
		},
	}
	initTransferCommandFlags(fetchCommand.Flags())

	copyCommand := &cobra.Command{
		Use:                   "copy SOURCE DESTINATION",
		DisableFlagsInUseLine: true,
		Short:                 "copy",
		Long:                  "copy every object under the source prefix to the destination prefix within the bucket",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, logger, client, err := initCommand(cmd, args, checkCopyConfig)
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd.Context(), v)
			defer cancel()

			start := time.Now()

			result, err := client.CopyFolder(ctx, args[0], args[1])
			if err != nil {
				_ = logger.Log("Error copying folder", result.Fields(), map[string]interface{}{
					"err": err.Error(),
				})
				os.Exit(1)
			}

			_ = logger.Log("Done copying folder", result.Fields(), map[string]interface{}{
				"elapsed": time.Since(start).String(),
			})

			return nil
		},
	}
	initTransferCommandFlags(copyCommand.Flags())

	saveCommand := &cobra.Command{
		Use:                   "save PREFIX PATH [CONTENT]",
		DisableFlagsInUseLine: true,
		Short:                 "save",
		Long:                  "save content to the object at PREFIX + PATH.  Content is read from --file or stdin when not given as an argument.",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, logger, client, err := initCommand(cmd, args, checkSaveConfig)
			if err != nil {
				return err
			}

			ctx, cancel := withTimeout(cmd.Context(), v)
			defer cancel()

			content, err := readContent(args, v.GetString(flagFile), cmd.InOrStdin())
			if err != nil {
				return err
			}

			if err := client.SaveObject(ctx, args[0], args[1], content); err != nil {
				_ = logger.Log("Error saving object", map[string]interface{}{
					"key": args[0] + args[1],
					"err": err.Error(),
				})
				os.Exit(1)
			}

			_ = logger.Log("Done saving object", map[string]interface{}{
				"key":  args[0] + args[1],
				"size": len(content),
			})

			return nil
		},
	}
	initSaveCommandFlags(saveCommand.Flags())

	versionCommand := &cobra.Command{
		Use:                   `version`,
		DisableFlagsInUseLine: true,
		Short:                 "show version",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(GoBucketVersion)
			return nil
		},
	}

	rootCommand.AddCommand(layoutsCommand, fetchCommand, copyCommand, saveCommand, versionCommand)

	// a missing .env file is not an error
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "gobucket: error loading .env file: "+err.Error())
		os.Exit(1)
	}

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gobucket: "+err.Error())
		fmt.Fprintln(os.Stderr, "Try \"gobucket --help\" for more information.")
		os.Exit(1)
	}
}
