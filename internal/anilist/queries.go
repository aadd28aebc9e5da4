package anilist

// MediaSeasonQuery selects one page of seasonal media. More fields are
// requested than the chart consumes, for later processing.
const MediaSeasonQuery = `
query GetMedia($status: [MediaStatus!], $format: [MediaFormat!], $season: MediaSeason, $year: Int){
    Page{
        media(status_in: $status, format_in: $format, season: $season, seasonYear: $year){
            title{
                romaji
                english
                native
            }
            id
            startDate{
                year
                month
                day
            }
            endDate{
                year
                month
                day
            }
            episodes
            seasonInt
            seasonYear
            season
            format
            status
            duration
            genres
            meanScore
            popularity
            trending
            stats{
                scoreDistribution{
                    score
                    amount
                }
                statusDistribution{
                    status
                    amount
                }
            }
        }
    }
}
`
