// Package config loads game configuration from an HCL file.
//
// Every block is optional and a missing file yields DefaultConfig:
//
//	solution {
//	  url            = "https://random-word-api.herokuapp.com/word"
//	  timeout        = 10
//	  retries        = 2
//	  retry_delay    = 500
//	  fallback_words = ["CRANE", "GHOST"]
//	  rules          = "classic"
//	}
//
//	ui {
//	  log_level = "warn"
//	  log_file  = "wordle.log"
//	  theme     = "dark"
//	  no_color  = false
//	}
//
//	feed {
//	  address = ":8080"
//	}
//
// Setting fallback_words = [] restores the behaviour of a game that can only
// be played once the word service answers.
package config
