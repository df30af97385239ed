package echolib_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/9seconds/echoip/echolib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RecordTestSuite struct {
	suite.Suite

	r echolib.Record
}

func (suite *RecordTestSuite) SetupTest() {
	decoder := json.NewDecoder(strings.NewReader(`{
        "ip": "8.8.8.8",
        "city": "Mountain View",
        "country_name": "United States",
        "latitude": 0.0,
        "longitude": -122.0775,
        "in_eu": false,
        "org": "GOOGLE",
        "asn": "AS15169",
        "nested": {"level": {"value": "deep"}, "empty": {}}
    }`))
	decoder.UseNumber()

	suite.r = echolib.Record{}
	suite.Require().NoError(decoder.Decode(&suite.r))
}

func (suite *RecordTestSuite) TestGet() {
	suite.Equal("Mountain View", suite.r.Get("city"))
	suite.Nil(suite.r.Get("unknown"))
}

func (suite *RecordTestSuite) TestWalk() {
	suite.Equal("deep", suite.r.Walk("nested", "level", "value"))
	suite.Equal("GOOGLE", suite.r.Walk("org"))
}

func (suite *RecordTestSuite) TestWalkMissing() {
	suite.Nil(suite.r.Walk("nested", "unknown", "value"))
	suite.Nil(suite.r.Walk("unknown"))
}

func (suite *RecordTestSuite) TestWalkThroughScalar() {
	suite.Nil(suite.r.Walk("latitude", "value"))
	suite.Nil(suite.r.Walk("city", "name"))
}

func (suite *RecordTestSuite) TestLocation() {
	location := suite.r.Location()

	suite.Equal("United States", location.Country)
	suite.Equal("Mountain View", location.City)
	suite.Equal(json.Number("0.0"), location.Latitude)
	suite.Nil(location.Postal)
}

func (suite *RecordTestSuite) TestASN() {
	view := suite.r.ASN()

	suite.Equal("AS15169", view.Field("asn"))
	suite.Equal("GOOGLE", view.Field("name"))
	suite.Nil(view.Field("route"))
	suite.Nil(view.Field("unknown"))
}

func (suite *RecordTestSuite) TestIsEmpty() {
	suite.True(echolib.IsEmpty(nil))
	suite.True(echolib.IsEmpty(""))
	suite.True(echolib.IsEmpty(false))
	suite.True(echolib.IsEmpty(json.Number("0.0")))
	suite.True(echolib.IsEmpty(json.Number("0")))
	suite.True(echolib.IsEmpty(map[string]interface{}{}))
	suite.True(echolib.IsEmpty([]interface{}{}))

	suite.False(echolib.IsEmpty("x"))
	suite.False(echolib.IsEmpty(true))
	suite.False(echolib.IsEmpty(json.Number("-122.0775")))
	suite.False(echolib.IsEmpty(suite.r.Walk("nested")))
}

func (suite *RecordTestSuite) TestStringify() {
	suite.Equal("None", echolib.Stringify(nil))
	suite.Equal("GOOGLE", echolib.Stringify(suite.r.Get("org")))
	suite.Equal("-122.0775", echolib.Stringify(suite.r.Get("longitude")))
	suite.Equal("false", echolib.Stringify(suite.r.Get("in_eu")))
	suite.Equal(`{"value":"deep"}`, echolib.Stringify(suite.r.Walk("nested", "level")))
}

func TestRecord(t *testing.T) {
	suite.Run(t, &RecordTestSuite{})
}

func TestRecordAliased(t *testing.T) {
	r := echolib.Record{"country": "US", "country_name": "United States"}
	aliased := r.Aliased()

	assert.Equal(t, "United States", aliased.Walk("country"))
	assert.Equal(t, "United States", aliased.Walk("country_name"))
	assert.Equal(t, "US", r.Get("country"))
	assert.Nil(t, echolib.Record{"country": "US"}.Aliased().Get("country"))
	assert.NotContains(t, echolib.Record{"country": "US"}.Aliased(), "country")
}
