// Package config loads the kopadb YAML configuration.
//
//	snapshot:
//	  driver: sqlite
//	  path: data/kopadb.db
//	log:
//	  level: debug
//	  format: json
//	  file: logs/kopadb.log
//	shell:
//	  implicit_primary_key: false
//	lending:
//	  enabled: true
//	web:
//	  addr: ":8080"
package config
