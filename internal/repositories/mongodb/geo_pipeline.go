package mongodb

import (
	"regexp"

	"nearmarket/internal/repositories/interfaces"
	"nearmarket/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// metersToKM converts the $geoNear distance output to kilometers so every
// layer above the driver speaks one unit.
const metersToKM = 0.001

// buildGeoNearStage constructs the leading $geoNear stage of a proximity
// pipeline. filter is merged into the stage's query so ineligible records
// never enter the pipeline.
func buildGeoNearStage(query *interfaces.NearbyQuery, filter bson.M) bson.D {
	maxKM := query.MaxDistanceKM
	if maxKM <= 0 {
		maxKM = utils.MaxSearchRadiusKM
	}

	return bson.D{{Key: "$geoNear", Value: bson.M{
		"near": bson.M{
			"type":        "Point",
			"coordinates": []float64{query.Longitude, query.Latitude},
		},
		"key":                "location",
		"distanceField":      "distance",
		"distanceMultiplier": metersToKM,
		"maxDistance":        utils.KMToMeters(maxKM),
		"spherical":          true,
		"query":              filter,
	}}}
}

// appendPagingStages adds the deterministic sort and skip/limit tail.
// Distance ascending, id ascending: the stable tie-break keeps pagination
// free of duplicates and gaps across repeated identical calls.
func appendPagingStages(pipeline []bson.D, query *interfaces.NearbyQuery) []bson.D {
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
		{Key: "distance", Value: 1},
		{Key: "_id", Value: 1},
	}}})
	if query.Skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: query.Skip}})
	}
	limit := query.Limit
	if limit <= 0 {
		limit = utils.DefaultLimit
	}
	return append(pipeline, bson.D{{Key: "$limit", Value: limit}})
}

// textSearchFilter builds the case-insensitive OR filter for a search term
// across the given fields, unioned with any resolved category ids.
func textSearchFilter(query *interfaces.NearbyQuery, fields []string) bson.M {
	if query.Search == "" {
		return nil
	}

	pattern := regexp.QuoteMeta(query.Search)
	var or []bson.M
	for _, field := range fields {
		or = append(or, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
	}
	if len(query.CategoryIDs) > 0 {
		or = append(or, bson.M{"category_id": bson.M{"$in": query.CategoryIDs}})
	}

	return bson.M{"$or": or}
}

// categoryLookupStages flattens the category reference into category_name.
func categoryLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         utils.CollectionCategories,
			"localField":   "category_id",
			"foreignField": "_id",
			"as":           "category",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"category_name": bson.M{"$ifNull": bson.A{
				bson.M{"$arrayElemAt": bson.A{"$category.name", 0}}, "",
			}},
		}}},
		{{Key: "$project", Value: bson.M{"category": 0}}},
	}
}
