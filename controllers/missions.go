package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Mission is a catalog entry. The catalog is static marketing content; a
// submission copies the title and description at creation time rather than
// referencing it.
type Mission struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Timeframe    string `json:"timeframe"`
	Participants int    `json:"participants"`
	Badge        string `json:"badge"`
	Category     string `json:"category"`
}

var missionCatalog = []Mission{
	{
		ID:           1,
		Title:        "Urban Tree Planting Initiative",
		Description:  "Join us in planting native trees across urban neighborhoods to combat climate change and improve air quality.",
		Location:     "Downtown Community Park, New York",
		Timeframe:    "March 15-30, 2025",
		Participants: 45,
		Badge:        "Junior",
		Category:     "Forestry",
	},
	{
		ID:           2,
		Title:        "Coastal Cleanup Challenge",
		Description:  "Collect plastic waste from beaches and coastal areas, documenting the impact through video evidence.",
		Location:     "Venice Beach, Los Angeles",
		Timeframe:    "April 5-12, 2025",
		Participants: 67,
		Badge:        "Intermediate",
		Category:     "Waste Management",
	},
	{
		ID:           3,
		Title:        "School Climate Awareness Campaign",
		Description:  "Organize and host climate education sessions at local schools to raise awareness among students.",
		Location:     "Various Schools, Chicago",
		Timeframe:    "March 20 - April 15, 2025",
		Participants: 32,
		Badge:        "Junior",
		Category:     "Education",
	},
	{
		ID:           4,
		Title:        "River Restoration Project",
		Description:  "Help restore local river ecosystems by removing debris and planting native vegetation along riverbanks.",
		Location:     "Mississippi River Trail, Minnesota",
		Timeframe:    "April 18-25, 2025",
		Participants: 28,
		Badge:        "Intermediate",
		Category:     "Conservation",
	},
	{
		ID:           5,
		Title:        "Community Climate Workshop Series",
		Description:  "Lead interactive workshops teaching sustainable practices and climate action strategies to community members.",
		Location:     "Community Center, Portland",
		Timeframe:    "Every Saturday in April",
		Participants: 54,
		Badge:        "Major",
		Category:     "Education",
	},
	{
		ID:           6,
		Title:        "Neighborhood Garden Network",
		Description:  "Create community gardens promoting local food production and green spaces in urban neighborhoods.",
		Location:     "Multiple locations, Seattle",
		Timeframe:    "Ongoing - Join Anytime",
		Participants: 89,
		Badge:        "Junior",
		Category:     "Urban Greening",
	},
}

// GetMissions returns the static mission catalog.
func GetMissions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"missions": missionCatalog,
		"total":    len(missionCatalog),
	})
}
