package utils

// ConfigFileName is the local configuration file discovered in the working directory.
const ConfigFileName = ".pluck.yaml"

// GlobalConfigDirectoryName is the directory under the user home holding global configuration.
const GlobalConfigDirectoryName = ".pluck"
