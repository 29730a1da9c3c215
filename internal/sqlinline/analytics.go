package sqlinline

const QRecomputeAnalyticsDay = `--sql d787d2d1-3c3f-4ed7-b9f5-b150702c5665
with checkin_counts as (
    select
        count(*) filter (where status = 'done')    as checkins_done,
        count(*) filter (where status = 'skipped') as checkins_skipped,
        count(*) filter (where status = 'missed')  as checkins_missed
    from checkins
    where day = $1::date
),
activity_counts as (
    select
        (select count(*) from goals where created_at::date = $1::date)  as goals_created,
        (select count(*) from users where created_at::date = $1::date)  as new_users,
        (select count(*) from export_jobs
           where status in ('SUCCEEDED', 'FAILED')
             and updated_at::date = $1::date)                            as exports_finished
)
insert into analytics_daily (day, checkins_done, checkins_skipped, checkins_missed, goals_created, new_users, exports_finished, created_at, updated_at)
select $1::date, c.checkins_done, c.checkins_skipped, c.checkins_missed, a.goals_created, a.new_users, a.exports_finished, now(), now()
from checkin_counts c, activity_counts a
on conflict (day) do update set
    checkins_done = excluded.checkins_done,
    checkins_skipped = excluded.checkins_skipped,
    checkins_missed = excluded.checkins_missed,
    goals_created = excluded.goals_created,
    new_users = excluded.new_users,
    exports_finished = excluded.exports_finished,
    updated_at = now()
returning day::text, checkins_done, checkins_skipped, checkins_missed, goals_created, new_users, exports_finished, created_at, updated_at;
`
