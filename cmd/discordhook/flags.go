package main

import (
	"flag"
)

type AppFlags struct {
	ConfigFile string
	URL        string
	Content    string
	Username   string
	FilePath   string
	EnvFile    string
	LogLevel   string
	LogFile    string
	Retry      bool
}

func ParseFlags() AppFlags {
	configFile := flag.String("config", "", "Path to the YAML/JSON webhook configuration file.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	urlFlag := flag.String("url", "", "Webhook URL to send to. Overrides the config file and DISCORD_WEBHOOK_URL.")
	urlFlagAlias := flag.String("u", "", "Alias for -url")

	contentFlag := flag.String("content", "", "Message text to send.")
	contentFlagAlias := flag.String("m", "", "Alias for -content")

	fileFlag := flag.String("file", "", "Path to a file to attach to the message.")
	fileFlagAlias := flag.String("f", "", "Alias for -file")

	usernameFlag := flag.String("username", "", "Override the webhook's display name.")
	envFlag := flag.String("env", "", "Path to a .env file to load before reading the environment.")
	logLevelFlag := flag.String("log-level", "info", "Log level: debug, info, warn, error.")
	logFileFlag := flag.String("log-file", "", "Also write logs to this file, with rotation.")
	retryFlag := flag.Bool("retry", false, "Wait out Discord rate limits instead of failing.")

	flag.Parse()

	flags := AppFlags{
		Username: *usernameFlag,
		EnvFile:  *envFlag,
		LogLevel: *logLevelFlag,
		LogFile:  *logFileFlag,
		Retry:    *retryFlag,
	}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	if *urlFlag != "" {
		flags.URL = *urlFlag
	} else if *urlFlagAlias != "" {
		flags.URL = *urlFlagAlias
	}

	if *contentFlag != "" {
		flags.Content = *contentFlag
	} else if *contentFlagAlias != "" {
		flags.Content = *contentFlagAlias
	}

	if *fileFlag != "" {
		flags.FilePath = *fileFlag
	} else if *fileFlagAlias != "" {
		flags.FilePath = *fileFlagAlias
	}

	return flags
}
