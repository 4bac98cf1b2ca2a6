package birkhoff

// Version is the current version of this module. The release command strips
// the -dev suffix when tagging and bumps to the next development version
// afterwards.
const Version = "0.1.0-dev"
