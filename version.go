package ask

// Version is the library version reported by the ask command.
const Version = "0.1.0"
