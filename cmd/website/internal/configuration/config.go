package configuration

import (
	"fmt"
	"strings"

	"github.com/adampresley/configinator"
)

const (
	MetadataSourceFile = "file"
	MetadataSourceS3   = "s3"
	MetadataSourceDB   = "db"
)

type Config struct {
	AwsEndpointUrl     string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"http://localhost:4566" description:"AWS endpoint URL"`
	AwsRegion          string `flag:"awsregion" env:"AWS_REGION" default:"us-west-1" description:"AWS region"`
	AwsAccessKeyId     string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket          string `flag:"awsbucket" env:"AWS_BUCKET" default:"purvazinjarde-photography" description:"S3 bucket holding photo metadata"`
	BaseURL            string `flag:"baseurl" env:"BASE_URL" default:"" description:"Base URL photos are served from. Required"`
	CheckImages        bool   `flag:"checkimages" env:"CHECK_IMAGES" default:"false" description:"Verify every gallery image is reachable at startup"`
	CookieSecret       string `flag:"cookiesecret" env:"COOKIE_SECRET" default:"password" description:"Secret for encoding cookies"`
	DSN                string `flag:"dsn" env:"DSN" default:"file:./data/photography.db" description:"Data source name, used when the metadata source is 'db'"`
	Host               string `flag:"host" env:"HOST" default:"localhost:8080" description:"The address and port to bind the HTTP server to"`
	LogLevel           string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxCheckWorkers    int    `flag:"mcw" env:"MAX_CHECK_WORKERS" default:"10" description:"Maximum number of concurrent image checks"`
	MetadataKey        string `flag:"metadatakey" env:"METADATA_KEY" default:"metadata/photoMetaData.json" description:"S3 key of the metadata file. A key ending in '/' loads every metadata file under it"`
	MetadataPath       string `flag:"metadatapath" env:"METADATA_PATH" default:"" description:"Path to a JSON or YAML metadata file. Empty uses the embedded file"`
	MetadataSource     string `flag:"metadatasource" env:"METADATA_SOURCE" default:"file" description:"Where photo metadata is read from. Valid values are 'file', 's3', and 'db'"`
	SiteSubtitle       string `flag:"sitesubtitle" env:"SITE_SUBTITLE" default:"An Amateur Photographer Based in San Francisco" description:"Subtitle shown in the header"`
	SiteTitle          string `flag:"sitetitle" env:"SITE_TITLE" default:"Purva Zinjarde" description:"Title shown in the header"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}

/*
Validate reports configuration that would stop the site from working.
*/
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("BASE_URL is required")
	}

	switch c.MetadataSource {
	case MetadataSourceFile, MetadataSourceS3, MetadataSourceDB:
	default:
		return fmt.Errorf("unknown metadata source '%s'", c.MetadataSource)
	}

	if c.MaxCheckWorkers < 1 {
		return fmt.Errorf("MAX_CHECK_WORKERS must be at least 1, got %d", c.MaxCheckWorkers)
	}

	return nil
}
