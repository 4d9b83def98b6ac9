package conf

// MaxTableSize - Upper limit for the number of buckets accepted from the command line
const MaxTableSize uint64 = 1 << 24

// NifDigits - Number of decimal digits in a NIF
const NifDigits int = 8

// MaxNif - Highest NIF value
const MaxNif uint64 = 99999999

// LogFileMaxSize - Max size in megabytes of the log file before it is rotated
const LogFileMaxSize int = 10

// LogFileMaxBackups - Number of rotated log files to keep
const LogFileMaxBackups int = 3

// LogFileMaxAge - Max age in days of rotated log files
const LogFileMaxAge int = 30

// StdoutLogFormat - Log format for the console backend
const StdoutLogFormat string = `%{color:reset}%{color}%{time:15:04:05.000} [%{level}] [%{module}/%{shortfunc}] %{message}%{color:reset}`

// FileLogFormat - Log format for the file backend
const FileLogFormat string = `%{time:2006-01-02 15:04:05.000} [%{level}] [%{module}/%{shortfunc}] %{message}`
