package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/getoptions"
	"github.com/adampresley/adamgokit/s3/listoptions"
	"github.com/adampresley/adamgokit/slices"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/purvazinjarde/purvazinjardephotography/pkg/models"
	"github.com/rfberaldo/sqlz"
	"gopkg.in/yaml.v3"
)

var (
	metadataExtensions = []string{".json", ".yaml", ".yml"}
)

/*
MetadataLoader reads the photo metadata list. Implementations are called
once at startup.
*/
type MetadataLoader interface {
	Load(ctx context.Context) ([]models.Photo, error)
}

/*
DecodeMetadata parses a metadata document. The format is chosen from the
extension of name: YAML for .yaml and .yml, JSON otherwise.
*/
func DecodeMetadata(name string, r io.Reader) ([]models.Photo, error) {
	var (
		err    error
		b      []byte
		photos []models.Photo
	)

	if b, err = io.ReadAll(r); err != nil {
		return nil, fmt.Errorf("error reading metadata '%s': %w", name, err)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &photos)

	default:
		err = json.Unmarshal(b, &photos)
	}

	if err != nil {
		return nil, fmt.Errorf("error decoding metadata '%s': %w", name, err)
	}

	if photos == nil {
		photos = []models.Photo{}
	}

	return photos, nil
}

type FileMetadataLoaderConfig struct {
	FS   fs.FS
	Path string
}

type FileMetadataLoader struct {
	fs   fs.FS
	path string
}

func NewFileMetadataLoader(config FileMetadataLoaderConfig) FileMetadataLoader {
	return FileMetadataLoader{
		fs:   config.FS,
		path: config.Path,
	}
}

func (l FileMetadataLoader) Load(ctx context.Context) ([]models.Photo, error) {
	var (
		err error
		f   fs.File
	)

	if f, err = l.fs.Open(l.path); err != nil {
		return nil, fmt.Errorf("error opening metadata file '%s': %w", l.path, err)
	}

	defer f.Close()
	return DecodeMetadata(l.path, f)
}

type S3MetadataLoaderConfig struct {
	Bucket   string
	Key      string
	S3Client s3.S3Client
}

/*
S3MetadataLoader reads metadata from a bucket. When Key ends with a slash
it is treated as a prefix, and every metadata document beneath it is
loaded in key order and concatenated.
*/
type S3MetadataLoader struct {
	bucket   string
	key      string
	s3Client s3.S3Client
}

func NewS3MetadataLoader(config S3MetadataLoaderConfig) S3MetadataLoader {
	return S3MetadataLoader{
		bucket:   config.Bucket,
		key:      config.Key,
		s3Client: config.S3Client,
	}
}

func (l S3MetadataLoader) Load(ctx context.Context) ([]models.Photo, error) {
	var (
		err      error
		keys     []string
		photos   []models.Photo
		response s3.ListResponse
	)

	if !strings.HasSuffix(l.key, "/") {
		return l.loadObject(ctx, l.key)
	}

	response, err = l.s3Client.List(
		l.bucket,
		l.key,
		listoptions.WithContext(ctx),
		listoptions.WithGetAll(),
		listoptions.WithFilter(func(obj types.Object) bool {
			return IsMetadataKey(aws.ToString(obj.Key))
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("error listing metadata under '%s': %w", l.key, err)
	}

	for _, obj := range response.Objects {
		keys = append(keys, obj.Key)
	}

	sort.Strings(keys)
	result := []models.Photo{}

	for _, key := range keys {
		if photos, err = l.loadObject(ctx, key); err != nil {
			return nil, err
		}

		result = append(result, photos...)
	}

	return result, nil
}

func (l S3MetadataLoader) loadObject(ctx context.Context, key string) ([]models.Photo, error) {
	var (
		err    error
		object s3.GetObjectResponse
	)

	object, err = l.s3Client.Get(
		l.bucket,
		key,
		getoptions.WithContext(ctx),
		getoptions.WithTimeout(time.Minute),
	)

	if err != nil {
		return nil, fmt.Errorf("error getting metadata object '%s' from bucket '%s': %w", key, l.bucket, err)
	}

	defer object.Body.Close()
	return DecodeMetadata(key, object.Body)
}

/*
IsMetadataKey reports whether a file name or object key looks like a
metadata document.
*/
func IsMetadataKey(key string) bool {
	ext := strings.ToLower(filepath.Ext(key))
	return slices.IsInSlice(ext, metadataExtensions)
}

type DatabaseMetadataLoaderConfig struct {
	DB *sqlz.DB
}

type DatabaseMetadataLoader struct {
	db *sqlz.DB
}

func NewDatabaseMetadataLoader(config DatabaseMetadataLoaderConfig) DatabaseMetadataLoader {
	return DatabaseMetadataLoader{
		db: config.DB,
	}
}

func (l DatabaseMetadataLoader) Load(ctx context.Context) ([]models.Photo, error) {
	var (
		err error
	)

	result := []models.Photo{}

	sql := `
SELECT
   p.id
   , p.filename
   , p.label
   , COALESCE(p.title, '') AS title
   , COALESCE(p.location, '') AS location
   , p.is_gallery
FROM photos AS p
WHERE 1=1
   AND p.deleted_at IS NULL
ORDER BY p.sort_order, p.id
`

	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if err = l.db.Query(ctx, &result, sql); err != nil && !sqlz.IsNotFound(err) {
		return nil, fmt.Errorf("error querying for photos: %w", err)
	}

	return result, nil
}
