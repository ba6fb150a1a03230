package cityindex

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/commutecast/backend/internal/store/dynamo"
)

const indexSortKey = "INDEX"

type Repository struct {
	db    *dynamo.Client
	table string
}

func NewRepository(db *dynamo.Client, table string) *Repository {
	return &Repository{db: db, table: table}
}

func cityPK(cityKey string) string { return "CITY#" + cityKey }

// ListActive scans the index for every city with activeRouteCount > 0,
// following LastEvaluatedKey across Scan pages. The city index is
// expected to stay in the low thousands of rows, so a full Scan per
// nightly run is acceptable. A record's CityKey is taken from its
// CITY#<cityKey> partition key when the item carries no CityKey attribute.
func (r *Repository) ListActive(ctx context.Context) ([]Record, error) {
	var records []Record
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.db.DB.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.table),
			FilterExpression: aws.String("ActiveRouteCount > :zero"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":zero": &types.AttributeValueMemberN{Value: "0"},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range out.Items {
			var rec Record
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				continue
			}
			if rec.CityKey == "" {
				if pk, ok := item["PK"].(*types.AttributeValueMemberS); ok {
					rec.CityKey = strings.TrimPrefix(pk.Value, cityPK(""))
				}
			}
			records = append(records, rec)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	return records, nil
}

// Activate bumps a city's active route count by one, creating the index
// entry (with firstRegisteredAt) on first use and refreshing lastActiveAt
// on every call. The route create transaction applies its own inline
// increment to the same item and does not call this method.
func (r *Repository) Activate(ctx context.Context, cityKey, city, countryCode string, lat, lng float64) error {
	now := time.Now().UTC()
	_, err := r.db.DB.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: cityPK(cityKey)},
			"SK": &types.AttributeValueMemberS{Value: indexSortKey},
		},
		UpdateExpression: aws.String(
			"ADD ActiveRouteCount :one " +
				"SET City = :city, CountryCode = :countryCode, CityLat = :lat, CityLng = :lng, " +
				"LastActiveAt = :now, FirstRegisteredAt = if_not_exists(FirstRegisteredAt, :now)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":         &types.AttributeValueMemberN{Value: "1"},
			":city":        &types.AttributeValueMemberS{Value: city},
			":countryCode": &types.AttributeValueMemberS{Value: countryCode},
			":lat":         &types.AttributeValueMemberN{Value: strconv.FormatFloat(lat, 'f', -1, 64)},
			":lng":         &types.AttributeValueMemberN{Value: strconv.FormatFloat(lng, 'f', -1, 64)},
			":now":         &types.AttributeValueMemberS{Value: now.Format(time.RFC3339)},
		},
	})
	return err
}

// Deactivate decrements a city's active route count by one, guarded by a
// condition so the counter never underflows below zero even if a prior
// decrement was already applied (e.g. compensating-write drift).
func (r *Repository) Deactivate(ctx context.Context, cityKey string) error {
	_, err := r.db.DB.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: cityPK(cityKey)},
			"SK": &types.AttributeValueMemberS{Value: indexSortKey},
		},
		UpdateExpression:    aws.String("ADD ActiveRouteCount :minusOne"),
		ConditionExpression: aws.String("ActiveRouteCount > :zero"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":minusOne": &types.AttributeValueMemberN{Value: "-1"},
			":zero":     &types.AttributeValueMemberN{Value: "0"},
		},
	})
	if err != nil && dynamo.IsConditionalCheckFailed(err) {
		return nil
	}
	return err
}
