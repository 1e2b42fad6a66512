package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/dropDatabas3/authrelay/internal/observability/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// SecretValueGetter es el subconjunto del cliente de Secrets Manager que usamos.
type SecretValueGetter interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// LoadEnv trae el secreto de AWS Secrets Manager (si hay secret id) y después
// carga el .env local. Ninguno de los dos es obligatorio.
func LoadEnv(ctx context.Context, envFile string) {
	log := logger.L().With(logger.Component("config"))

	if err := LoadAWSSecrets(ctx, nil); err != nil {
		log.Warn("aws secrets manager omitido", logger.Err(err))
	}

	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Debug(".env no encontrado, se usan variables del sistema", zap.String("path", envFile))
	}
}

// LoadAWSSecrets lee AWS_SECRETS_MANAGER_SECRET_ID y vuelca el JSON del secreto
// como variables de entorno. client nil => se construye desde la config default de AWS.
func LoadAWSSecrets(ctx context.Context, client SecretValueGetter) error {
	secretID := os.Getenv("AWS_SECRETS_MANAGER_SECRET_ID")
	if secretID == "" {
		return nil
	}
	versionStage := os.Getenv("AWS_SECRETS_MANAGER_VERSION_STAGE")
	if versionStage == "" {
		versionStage = "AWSCURRENT"
	}
	overwrite := strings.EqualFold(os.Getenv("AWS_SECRETS_MANAGER_OVERWRITE"), "true")

	if client == nil {
		awsCfg, err := loadAWSConfig(ctx, os.Getenv("AWS_SECRETS_MANAGER_REGION"))
		if err != nil {
			return fmt.Errorf("aws config: %w", err)
		}
		client = secretsmanager.NewFromConfig(awsCfg)
	}

	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String(versionStage),
	})
	if err != nil {
		return fmt.Errorf("fetching secret %s: %w", secretID, err)
	}

	var payload []byte
	switch {
	case out.SecretString != nil:
		payload = []byte(*out.SecretString)
	case len(out.SecretBinary) > 0:
		payload = out.SecretBinary
	default:
		return fmt.Errorf("secret %s has no payload", secretID)
	}

	applied, err := applySecretJSON(payload, overwrite)
	if err != nil {
		return fmt.Errorf("secret %s: %w", secretID, err)
	}
	logger.L().Info("variables cargadas desde aws secrets manager",
		logger.Component("config"),
		zap.String("secret_id", secretID),
		zap.Int("applied", applied),
		zap.Bool("overwrite", overwrite),
	)
	return nil
}

var errEmptySecret = errors.New("empty secret payload")

// applySecretJSON setea cada clave del objeto JSON como env var.
// Sin overwrite no pisa variables ya definidas.
func applySecretJSON(payload []byte, overwrite bool) (int, error) {
	if len(strings.TrimSpace(string(payload))) == 0 {
		return 0, errEmptySecret
	}
	var kv map[string]any
	if err := json.Unmarshal(payload, &kv); err != nil {
		return 0, fmt.Errorf("parsing secret as JSON: %w", err)
	}

	applied := 0
	for key, val := range kv {
		if !overwrite && os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, fmt.Sprint(val)); err != nil {
			return applied, fmt.Errorf("setting env %s: %w", key, err)
		}
		applied++
	}
	return applied, nil
}

func loadAWSConfig(ctx context.Context, region string) (aws.Config, error) {
	if region != "" {
		return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	}
	return awsconfig.LoadDefaultConfig(ctx)
}
