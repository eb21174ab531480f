package config

import "strings"

// normalize folds alias keys, trims whitespace and fills defaults so
// the rest of the program never sees a partially specified config.
func normalize(raw rawAppConfig) AppConfig {
	cfg := AppConfig{
		Port:      raw.Port,
		Env:       strings.ToLower(strings.TrimSpace(raw.Env)),
		BaseURL:   strings.TrimSpace(raw.BaseURL),
		JWTSecret: strings.TrimSpace(raw.JWTSecret),
		Mail:      raw.Mail,
	}

	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = strings.ToLower(strings.TrimSpace(raw.NodeEnv))
	}
	if cfg.Env == "" {
		cfg.Env = defaultEnv
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = strings.TrimSpace(raw.SiteURL)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	cfg.AllowedOrigins = cleanList(raw.AllowedOrigins)
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = cleanList(raw.CORSAllowedOrigins)
	}

	cfg.Database = normalizeDatabase(raw)
	cfg.Admin = normalizeAdmin(raw.Admin)
	return cfg
}

func normalizeDatabase(raw rawAppConfig) DatabaseConfig {
	db := DatabaseConfig{
		Driver: strings.ToLower(strings.TrimSpace(raw.Database.Driver)),
		SQLite: SQLiteConfig{Path: strings.TrimSpace(raw.Database.SQLite.Path)},
		Mongo: MongoConfig{
			URI:  strings.TrimSpace(raw.Database.Mongo.URI),
			Name: strings.TrimSpace(raw.Database.Mongo.Name),
		},
	}

	if db.Mongo.URI == "" {
		db.Mongo.URI = strings.TrimSpace(raw.MongoURI)
	}
	if db.Driver == "" {
		// a mongo URI with no explicit driver implies the document store
		if db.Mongo.URI != "" {
			db.Driver = DriverMongo
		} else {
			db.Driver = DriverSQLite
		}
	}
	if db.SQLite.Path == "" {
		db.SQLite.Path = defaultSQLitePath
	}
	if db.Mongo.URI == "" {
		db.Mongo.URI = defaultMongoURI
	}
	if db.Mongo.Name == "" {
		db.Mongo.Name = defaultMongoName
	}
	return db
}

func normalizeAdmin(raw rawAdminCfg) AdminConfig {
	admin := AdminConfig{
		Username: strings.TrimSpace(raw.Username),
		Password: strings.TrimSpace(raw.Password),
	}
	if admin.Username == "" {
		admin.Username = strings.TrimSpace(raw.User)
	}
	if admin.Username == "" {
		admin.Username = defaultAdminUsername
	}
	if admin.Password == "" {
		admin.Password = defaultAdminPassword
	}
	return admin
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
