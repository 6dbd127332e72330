package c14n

// Version is the xmlc14n module version reported by the CLI's --version flag.
const Version = "0.1.0"
