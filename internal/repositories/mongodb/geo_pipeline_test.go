package mongodb

import (
	"testing"

	"nearmarket/internal/repositories/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTextSearchFilterEmptySearchReturnsNil(t *testing.T) {
	query := &interfaces.NearbyQuery{
		CategoryIDs: []primitive.ObjectID{primitive.NewObjectID()},
	}

	// No search term means no union filter at all; an explicit category
	// narrows the query via the caller's top-level filter instead.
	assert.Nil(t, textSearchFilter(query, []string{"name", "bio"}))
}

func TestTextSearchFilterUnionsFieldsAndCategories(t *testing.T) {
	categoryID := primitive.NewObjectID()
	query := &interfaces.NearbyQuery{
		Search:      "plumber",
		CategoryIDs: []primitive.ObjectID{categoryID},
	}

	filter := textSearchFilter(query, []string{"name", "bio"})
	require.NotNil(t, filter)

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 3)
	assert.Contains(t, or[0], "name")
	assert.Contains(t, or[1], "bio")
	assert.Equal(t, bson.M{"$in": []primitive.ObjectID{categoryID}}, or[2]["category_id"])
}

func TestTextSearchFilterEscapesRegexMetacharacters(t *testing.T) {
	query := &interfaces.NearbyQuery{Search: "a+b"}

	filter := textSearchFilter(query, []string{"name"})
	require.NotNil(t, filter)

	or := filter["$or"].([]bson.M)
	assert.Equal(t, `a\+b`, or[0]["name"].(bson.M)["$regex"])
}

func TestBuildGeoNearStageMergesFilterAndConvertsUnits(t *testing.T) {
	query := &interfaces.NearbyQuery{Latitude: 10, Longitude: 76, MaxDistanceKM: 5}
	filter := bson.M{"is_active": true, "category_id": primitive.NewObjectID()}

	stage := buildGeoNearStage(query, filter)
	require.Equal(t, "$geoNear", stage[0].Key)

	geoNear := stage[0].Value.(bson.M)
	assert.Equal(t, filter, geoNear["query"])
	assert.Equal(t, float64(5000), geoNear["maxDistance"])
	assert.Equal(t, []float64{76, 10}, geoNear["near"].(bson.M)["coordinates"])
}
