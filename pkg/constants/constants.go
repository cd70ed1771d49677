// Package constants provides shared constants for the nbfc-projection application.
package constants

// Projection horizon
const (
	// MonthsPerYear is the number of simulated months in a projection.
	MonthsPerYear = 12

	// CapitalInjectionMonths is the number of leading months that accept
	// fresh capital. Later months receive none.
	CapitalInjectionMonths = 5

	// DaysPerYear is used to derive loan rotation cycles per year.
	DaysPerYear = 365.0
)

// Engine rate constants. Rates expressed as fractions are applied directly,
// percentages are divided by PercentageMultiplier first.
const (
	// FirstMonthOpexRate is the OpEx percentage always used for the first month.
	FirstMonthOpexRate = 10.0

	// FirstMonthOpexFloor is the flat OpEx charged in the first month while
	// disbursement stays at or below FirstMonthOpexThreshold.
	FirstMonthOpexFloor = 1500000.0

	// FirstMonthOpexThreshold is the disbursement above which the first month
	// switches to rate-based OpEx.
	FirstMonthOpexThreshold = 50000000.0

	// APICostRate is the share of disbursement paid for credit/KYC APIs.
	APICostRate = 0.02

	// GSTRate is the tax rate applied to processing-fee revenue.
	GSTRate = 0.18

	// BadDebtRecoveryRate is the share of a month's bad debt recovered,
	// from the second month onwards.
	BadDebtRecoveryRate = 0.25

	// AUMRetentionFactor is the share of the prior book still outstanding a
	// month later (20% monthly runoff).
	AUMRetentionFactor = 0.8

	// PercentageMultiplier is used for percentage conversions.
	PercentageMultiplier = 100.0
)

// FundCostMonths lists the zero-based months in which cost of funds is billed.
var FundCostMonths = []int{2, 5, 8, 11}

// Presentation constants
const (
	// CroreDivisor converts absolute currency units into Crores.
	CroreDivisor = 10000000

	// DecimalPlaces is the rounding precision used by exports.
	DecimalPlaces = 2

	// DecimalPrecision is the precision for currency rounding (2 decimal places).
	DecimalPrecision = 100

	// CapitalTargetCrores is the reference capital the metrics panel compares against.
	CapitalTargetCrores = 20.0

	// CurrencySymbol prefixes formatted amounts.
	CurrencySymbol = "₹"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatSummary is the plain-text executive summary
	OutputFormatSummary = "summary"

	// OutputFormatJSON is the machine-readable JSON output format
	OutputFormatJSON = "json"
)

// OutputFormats lists every supported output format.
var OutputFormats = []string{OutputFormatPretty, OutputFormatCSV, OutputFormatSummary, OutputFormatJSON}

// Parameter file formats
const (
	ParamsFormatYAML = "yaml"
	ParamsFormatTOML = "toml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultEnvFile is loaded into the environment when present
	DefaultEnvFile = ".env"

	// EnvPrefix prefixes environment overrides, e.g. NBFC_PARAMETERS_MARKETINGRATE
	EnvPrefix = "NBFC"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown
	DefaultShutdownTimeoutSeconds = 10
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 paisa)
	CurrencyTolerance = 0.01

	MinProcessingFeeRate   = 5.0
	MaxProcessingFeeRate   = 20.0
	MinMonthlyInterestRate = 15.0
	MaxMonthlyInterestRate = 50.0
	MinCostOfFundsRate     = 0.5
	MaxCostOfFundsRate     = 5.0
	MinMarketingRate       = 0.5
	MaxMarketingRate       = 5.0
	MinAvgLoanTicket       = 10000.0
	MaxAvgLoanTicket       = 50000.0
	MinRotationCycleDays   = 15
	MaxRotationCycleDays   = 45
	MinOpexRate            = 0.0
	MaxOpexRate            = 100.0
	MaxCollectionTotal     = 100.0
)
