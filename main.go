package main

import (
	"fmt"

	"github.com/Jimmy9507/foundaments-data-recal/cmd"

	"github.com/spf13/viper"
)

func configureViper() {
	// read config file
	viper.SetConfigName("fdrecal")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/fdrecal/")
	viper.AddConfigPath("$HOME/.config/fdrecal")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig() // Find and read the config file
	if err != nil {             // Handle errors reading the config file
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
}

func main() {
	configureViper()
	cmd.Execute()
}
